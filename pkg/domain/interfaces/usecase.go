package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

type UseCase interface {
	GenerateDocumentation(ctx context.Context, input *model.GenerateDocumentationInput) (*model.GenerationResult, error)
	GenerateFileDocumentation(ctx context.Context, input *model.GenerateFileDocumentationInput) (*model.FileDocumentation, error)
	GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error)
	ExportDocumentation(ctx context.Context, input *model.ExportDocumentationInput) (*model.ExportResult, error)

	GetContext(ctx context.Context, name types.RepoName, query string) (string, error)
	AnswerQuestion(ctx context.Context, input *model.AnswerQuestionInput) (*model.Conversation, error)
	RequestDocumentationUpdate(ctx context.Context, input *model.RequestUpdateInput) (*model.UpdateRequestResult, error)
	ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error)

	GitHubAuthURL(ctx context.Context, state string) (string, error)
	GitHubCallback(ctx context.Context, code string) (types.GitHubToken, error)
	ListGitHubRepositories(ctx context.Context, token types.GitHubToken) ([]*model.GitHubRepository, error)
	GetGitHubRepository(ctx context.Context, token types.GitHubToken, name types.RepoName) (*model.GitHubRepositoryDetail, error)
}
