package usecase

// Export unexported functions for testing
var (
	ListImportantFilesForTest = listImportantFiles
	BuildTreeForTest          = buildTree
	CleanDiagramForTest       = cleanDiagram
	BuildContextForTest       = buildContext
	IsImportantFileForTest    = isImportantFile
)
