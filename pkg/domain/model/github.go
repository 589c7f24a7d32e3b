package model

import "github.com/sujeethshingade/docster/pkg/domain/types"

// TreeEntry is one node of a repository listing. Contents is only populated by
// the recursive structure builder.
type TreeEntry struct {
	Type     types.TreeEntryType `json:"type"`
	Name     string              `json:"name"`
	Path     string              `json:"path"`
	Size     int                 `json:"size,omitempty"`
	Contents []*TreeEntry        `json:"contents,omitempty"`
}

func (x *TreeEntry) IsDir() bool {
	return x.Type == types.TreeEntryDirectory
}

type FileContent struct {
	Path string
	Name string
	Size int
	Data []byte
}

// Contents is the result of asking GitHub for a path: either a single file or
// a directory listing, never both.
type Contents struct {
	Kind    types.ContentKind
	File    *FileContent
	Entries []*TreeEntry
}

func (x *Contents) IsFile() bool {
	return x != nil && x.Kind == types.ContentKindFile && x.File != nil
}

func (x *Contents) IsDir() bool {
	return x != nil && x.Kind == types.ContentKindDirectory
}

type GitHubRepository struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Language      string   `json:"language"`
	DefaultBranch string   `json:"default_branch"`
	Stars         int      `json:"stargazers_count"`
	Forks         int      `json:"forks_count"`
	Topics        []string `json:"topics"`
	OwnerLogin    string   `json:"owner_login"`
	Private       bool     `json:"private"`
}

type GitHubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// GitHubRepositoryDetail is a repository with its top level listing.
type GitHubRepositoryDetail struct {
	GitHubRepository
	Structure []*TreeEntry `json:"structure"`
}
