package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// AnswerQuestion answers a question using the stored documentation as
// context and appends the exchange to the chat history.
func (x *UseCase) AnswerQuestion(ctx context.Context, input *model.AnswerQuestionInput) (*model.Conversation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	docContext, err := x.GetContext(ctx, input.RepoName, input.Question)
	if err != nil {
		return nil, err
	}

	prompt, err := x.prompts.render(PromptQuestion, questionPrompt{
		Context:  docContext,
		Question: input.Question,
	})
	if err != nil {
		return nil, err
	}

	answer, err := x.generate(ctx, prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to answer question", goerr.V("repo", input.RepoName))
	}

	conv := &model.Conversation{
		RepoName:  input.RepoName,
		Question:  input.Question,
		Answer:    answer,
		Timestamp: logging.CtxTime(ctx),
	}
	if err := x.clients.DocumentRepository().PutConversation(ctx, conv); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("question answered", slog.String("repo", input.RepoName.String()))
	return conv, nil
}

// RequestDocumentationUpdate records a suggestion for one documented file.
// The stored documentation is not modified.
func (x *UseCase) RequestDocumentationUpdate(ctx context.Context, input *model.RequestUpdateInput) (*model.UpdateRequestResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := x.clients.DocumentRepository().GetDocumentation(ctx, input.RepoName)
	if err != nil {
		return nil, goerr.Wrap(err, "no documentation available for this repository", goerr.V("repo", input.RepoName))
	}

	if doc.FindFile(input.FilePath) == nil {
		return nil, goerr.Wrap(types.ErrNoDocumentation, "no documentation found for file",
			goerr.V("repo", input.RepoName),
			goerr.V("file_path", input.FilePath),
		)
	}

	logging.From(ctx).Info("documentation update requested",
		slog.String("repo", input.RepoName.String()),
		slog.String("file_path", input.FilePath),
	)

	return &model.UpdateRequestResult{
		Status:     "success",
		Message:    "Documentation update requested for " + input.FilePath,
		Suggestion: input.Suggestion,
	}, nil
}

func (x *UseCase) ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	return x.clients.DocumentRepository().ListConversations(ctx, name)
}
