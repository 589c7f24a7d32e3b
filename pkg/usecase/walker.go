package usecase

import (
	"context"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

var prunedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"venv":         true,
	"dist":         true,
	"build":        true,
}

var importantNames = map[string]bool{
	"readme.md":       true,
	"contributing.md": true,
	"license":         true,
	"dockerfile":      true,
	".env.example":    true,
}

var importantExts = map[string]bool{
	".py":   true,
	".js":   true,
	".jsx":  true,
	".ts":   true,
	".tsx":  true,
	".go":   true,
	".java": true,
	".rb":   true,
	".php":  true,
	".c":    true,
	".cpp":  true,
	".h":    true,
	".hpp":  true,
}

func isImportantFile(name string) bool {
	lower := strings.ToLower(name)
	return importantNames[lower] || importantExts[path.Ext(lower)]
}

func isPrunedDir(name string) bool {
	return prunedDirs[strings.ToLower(name)]
}

func listDirectory(ctx context.Context, gh interfaces.GitHub, repo types.RepoName, dir string) ([]*model.TreeEntry, error) {
	contents, err := gh.GetContents(ctx, repo, dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory", goerr.V("repo", repo), goerr.V("path", dir))
	}
	if !contents.IsDir() {
		return nil, goerr.Wrap(types.ErrNotADirectory, "expected a directory listing", goerr.V("repo", repo), goerr.V("path", dir))
	}
	return contents.Entries, nil
}

// listImportantFiles walks the repository depth first and returns paths of
// files worth documenting. Files of a directory come before the files of its
// subdirectories, and subdirectories are visited in listing order.
func listImportantFiles(ctx context.Context, gh interfaces.GitHub, repo types.RepoName, root string) ([]string, error) {
	entries, err := listDirectory(ctx, gh, repo, root)
	if err != nil {
		return nil, err
	}

	var files []string
	var dirs []*model.TreeEntry
	for _, entry := range entries {
		if entry.IsDir() {
			if !isPrunedDir(entry.Name) {
				dirs = append(dirs, entry)
			}
			continue
		}
		if isImportantFile(entry.Name) {
			files = append(files, entry.Path)
		}
	}

	for _, dir := range dirs {
		sub, err := listImportantFiles(ctx, gh, repo, dir.Path)
		if err != nil {
			return nil, err
		}
		files = append(files, sub...)
	}

	return files, nil
}

// buildTree returns the full nested listing under root without filtering.
func buildTree(ctx context.Context, gh interfaces.GitHub, repo types.RepoName, root string) ([]*model.TreeEntry, error) {
	entries, err := listDirectory(ctx, gh, repo, root)
	if err != nil {
		return nil, err
	}

	tree := make([]*model.TreeEntry, 0, len(entries))
	for _, entry := range entries {
		node := &model.TreeEntry{
			Type: entry.Type,
			Name: entry.Name,
			Path: entry.Path,
			Size: entry.Size,
		}

		if entry.IsDir() {
			children, err := buildTree(ctx, gh, repo, entry.Path)
			if err != nil {
				return nil, err
			}
			node.Contents = children
		}

		tree = append(tree, node)
	}

	return tree, nil
}
