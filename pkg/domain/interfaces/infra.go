package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub GitHubFactory GitHubOAuth LLM Exporter

import (
	"context"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

// GitHub is a client bound to a single user credential.
type GitHub interface {
	GetRepository(ctx context.Context, repo types.RepoName) (*model.GitHubRepository, error)
	GetContents(ctx context.Context, repo types.RepoName, path string) (*model.Contents, error)
	GetAuthenticatedUser(ctx context.Context) (*model.GitHubUser, error)
	ListRepositories(ctx context.Context) ([]*model.GitHubRepository, error)
}

// GitHubFactory builds a GitHub client for the credential of one request.
type GitHubFactory interface {
	New(ctx context.Context, token types.GitHubToken) (GitHub, error)
}

type GitHubOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (types.GitHubToken, error)
}

type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Exporter interface {
	Export(ctx context.Context, markdown string, format types.ExportFormat) ([]byte, error)
}
