package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/mock"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/repository"
	"github.com/sujeethshingade/docster/pkg/repository/memory"
	"github.com/sujeethshingade/docster/pkg/usecase"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

func TestAnswerQuestion(t *testing.T) {
	ctx := testContext()

	t.Run("answer is generated from the context and saved", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.PutDocumentation(ctx, newStoredDocumentation(), "md"))

		var prompts []string
		llm := &mock.LLMMock{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				prompts = append(prompts, prompt)
				return "It uses retries.", nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithLLM(llm),
			infra.WithDocumentRepository(repo),
		), usecase.WithRetryPolicy(noWaitPolicy()))

		conv := gt.R1(uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{
			RepoName: testRepoName,
			Question: "How is the database accessed?",
		})).NoError(t)

		gt.V(t, conv.Answer).Equal("It uses retries.")
		gt.V(t, conv.RepoName).Equal(testRepoName)
		gt.V(t, conv.Timestamp).Equal(testTime)

		gt.V(t, len(prompts)).Equal(1)
		gt.S(t, prompts[0]).Contains("File: pkg/db.go")
		gt.S(t, prompts[0]).Contains("Question: How is the database accessed?")

		history := gt.R1(repo.ListConversations(ctx, testRepoName)).NoError(t)
		gt.V(t, len(history)).Equal(1)
		gt.V(t, history[0].Question).Equal("How is the database accessed?")
	})

	t.Run("question without documentation still gets an answer", func(t *testing.T) {
		var prompt string
		llm := &mock.LLMMock{
			GenerateFunc: func(ctx context.Context, p string) (string, error) {
				prompt = p
				return "I do not know.", nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithLLM(llm),
			infra.WithDocumentRepository(memory.New()),
		))

		gt.R1(uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{
			RepoName: testRepoName,
			Question: "What is this?",
		})).NoError(t)
		gt.S(t, prompt).Contains(usecase.NoDocumentationContext)
	})

	t.Run("LLM exhaustion does not save the conversation", func(t *testing.T) {
		repo := memory.New()
		llm := &mock.LLMMock{
			GenerateFunc: func(ctx context.Context, p string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		uc := usecase.New(infra.New(
			infra.WithLLM(llm),
			infra.WithDocumentRepository(repo),
		), usecase.WithRetryPolicy(noWaitPolicy()))

		_, err := uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{
			RepoName: testRepoName,
			Question: "What is this?",
		})
		gt.True(t, errors.Is(err, types.ErrLLMUnavailable))
		gt.V(t, len(llm.GenerateCalls())).Equal(4)

		history := gt.R1(repo.ListConversations(ctx, testRepoName)).NoError(t)
		gt.V(t, len(history)).Equal(0)
	})

	t.Run("empty question is rejected before any call", func(t *testing.T) {
		llm := &mock.LLMMock{}
		uc := usecase.New(infra.New(infra.WithLLM(llm), infra.WithDocumentRepository(memory.New())))

		_, err := uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{RepoName: testRepoName})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(llm.GenerateCalls())).Equal(0)
	})
}

func TestRequestDocumentationUpdate(t *testing.T) {
	ctx := testContext()
	repo := memory.New()
	gt.NoError(t, repo.PutDocumentation(ctx, newStoredDocumentation(), "md"))
	uc := usecase.New(infra.New(infra.WithDocumentRepository(repo)))

	t.Run("documented file", func(t *testing.T) {
		result := gt.R1(uc.RequestDocumentationUpdate(ctx, &model.RequestUpdateInput{
			RepoName:   testRepoName,
			FilePath:   "pkg/db.go",
			Suggestion: "Mention connection pooling",
		})).NoError(t)

		gt.V(t, result).Equal(&model.UpdateRequestResult{
			Status:     "success",
			Message:    "Documentation update requested for pkg/db.go",
			Suggestion: "Mention connection pooling",
		})

		// Stored documentation is left untouched
		stored := gt.R1(repo.GetDocumentation(ctx, testRepoName)).NoError(t)
		gt.V(t, stored.FindFile("pkg/db.go").Documentation).Equal("Database access with retries.")
	})

	t.Run("undocumented file", func(t *testing.T) {
		_, err := uc.RequestDocumentationUpdate(ctx, &model.RequestUpdateInput{
			RepoName:   testRepoName,
			FilePath:   "pkg/other.go",
			Suggestion: "x",
		})
		gt.True(t, errors.Is(err, types.ErrNoDocumentation))
	})

	t.Run("repository without documentation", func(t *testing.T) {
		_, err := uc.RequestDocumentationUpdate(ctx, &model.RequestUpdateInput{
			RepoName:   "octo/other",
			FilePath:   "main.go",
			Suggestion: "x",
		})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestListConversations(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(infra.New(
		infra.WithLLM(&mock.LLMMock{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "answer", nil
			},
		}),
		infra.WithDocumentRepository(repo),
	))

	for i, q := range []string{"first?", "second?"} {
		at := testTime.Add(time.Duration(i) * time.Minute)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return at })
		gt.R1(uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{RepoName: testRepoName, Question: q})).NoError(t)
	}

	history := gt.R1(uc.ListConversations(context.Background(), testRepoName)).NoError(t)
	gt.V(t, len(history)).Equal(2)
	gt.V(t, history[0].Question).Equal("first?")
	gt.V(t, history[1].Question).Equal("second?")
}
