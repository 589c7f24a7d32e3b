package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

func (x *UseCase) GitHubAuthURL(ctx context.Context, state string) (string, error) {
	if x.clients.GitHubOAuth() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured")
	}
	return x.clients.GitHubOAuth().AuthCodeURL(state), nil
}

func (x *UseCase) GitHubCallback(ctx context.Context, code string) (types.GitHubToken, error) {
	if x.clients.GitHubOAuth() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured")
	}
	if code == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "authorization code is required")
	}
	return x.clients.GitHubOAuth().Exchange(ctx, code)
}

func (x *UseCase) ListGitHubRepositories(ctx context.Context, token types.GitHubToken) ([]*model.GitHubRepository, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}

	gh, err := x.clients.GitHub().New(ctx, token)
	if err != nil {
		return nil, err
	}
	return gh.ListRepositories(ctx)
}

// GetGitHubRepository returns repository metadata with its top level listing.
func (x *UseCase) GetGitHubRepository(ctx context.Context, token types.GitHubToken, name types.RepoName) (*model.GitHubRepositoryDetail, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}

	gh, err := x.clients.GitHub().New(ctx, token)
	if err != nil {
		return nil, err
	}

	repo, err := gh.GetRepository(ctx, name)
	if err != nil {
		return nil, err
	}

	entries, err := listDirectory(ctx, gh, name, "")
	if err != nil {
		return nil, err
	}

	return &model.GitHubRepositoryDetail{
		GitHubRepository: *repo,
		Structure:        entries,
	}, nil
}
