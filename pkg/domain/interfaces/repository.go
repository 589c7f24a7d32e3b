package interfaces

import (
	"context"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

//go:generate moq -out ../mock/document_repository_mock.go -pkg mock . DocumentRepository

// DocumentRepository stores generated documentation and chat history per repository
type DocumentRepository interface {
	// PutDocumentation replaces the stored record. markdown is the rendered form of doc.
	PutDocumentation(ctx context.Context, doc *model.RepositoryDocumentation, markdown string) error
	GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error)

	PutConversation(ctx context.Context, conv *model.Conversation) error
	ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error)
}
