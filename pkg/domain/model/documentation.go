package model

import (
	"time"

	"github.com/sujeethshingade/docster/pkg/domain/types"
)

type FileDocumentation struct {
	FilePath      string    `json:"file_path" firestore:"file_path"`
	Documentation string    `json:"documentation" firestore:"documentation"`
	GeneratedAt   time.Time `json:"generated_at" firestore:"generated_at"`
}

type RepositoryInfo struct {
	Name        string `json:"name" firestore:"name"`
	Owner       string `json:"owner" firestore:"owner"`
	URL         string `json:"url" firestore:"url"`
	Description string `json:"description" firestore:"description"`
	Summary     string `json:"summary" firestore:"summary"`
}

type Diagrams struct {
	Flow string `json:"flow" firestore:"flow"`
}

// RepositoryDocumentation is the aggregate persisted per repository. Files
// keep the order in which they were selected by the walker.
type RepositoryDocumentation struct {
	Key         types.RepoName       `json:"repo_name,omitempty" firestore:"repo_name,omitempty"`
	Repository  RepositoryInfo       `json:"repository" firestore:"repository"`
	Files       []*FileDocumentation `json:"files" firestore:"files"`
	Diagrams    *Diagrams            `json:"diagrams,omitempty" firestore:"diagrams,omitempty"`
	GeneratedAt time.Time            `json:"generated_at" firestore:"generated_at"`
}

// RepoName returns the name the record is stored under: the name the
// generation was requested for, or "owner/name" reported by GitHub when the
// record carries no such name.
func (x *RepositoryDocumentation) RepoName() types.RepoName {
	if x.Key != "" {
		return x.Key
	}
	return types.RepoName(x.Repository.Owner + "/" + x.Repository.Name)
}

// FindFile returns the documentation for path or nil.
func (x *RepositoryDocumentation) FindFile(path string) *FileDocumentation {
	for _, f := range x.Files {
		if f.FilePath == path {
			return f
		}
	}
	return nil
}

type Conversation struct {
	RepoName  types.RepoName `json:"repo_name" firestore:"repo_name"`
	Question  string         `json:"question" firestore:"question"`
	Answer    string         `json:"answer" firestore:"answer"`
	Timestamp time.Time      `json:"timestamp" firestore:"timestamp"`
}

type SkippedFile struct {
	FilePath string `json:"file_path"`
	Reason   string `json:"reason"`
}

type GenerationResult struct {
	Documentation *RepositoryDocumentation `json:"documentation"`
	Skipped       []*SkippedFile           `json:"skipped"`
}

type UpdateRequestResult struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

type ExportResult struct {
	FileName string
	MimeType string
	Data     []byte
}
