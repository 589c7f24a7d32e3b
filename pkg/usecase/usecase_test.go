package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/repository/memory"
	"github.com/sujeethshingade/docster/pkg/usecase"
)

func TestRetryPolicyIsAppliedToLLMCalls(t *testing.T) {
	ctx := testContext()

	t.Run("transient failures are retried", func(t *testing.T) {
		llmMock := newLLMStub().mock()
		generate := llmMock.GenerateFunc
		failures := 2
		llmMock.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
			if promptKind(prompt) == "summary" && failures > 0 {
				failures--
				return "", errors.New("temporary outage")
			}
			return generate(ctx, prompt)
		}

		uc := usecase.New(infra.New(
			infra.WithGitHub(newFactoryMock(newGitHubMock(defaultNodes()...))),
			infra.WithLLM(llmMock),
			infra.WithDocumentRepository(memory.New()),
		), usecase.WithRetryPolicy(noWaitPolicy()))

		result := gt.R1(uc.GenerateDocumentation(ctx, &model.GenerateDocumentationInput{
			RepoName: testRepoName,
			Token:    "tok",
		})).NoError(t)
		gt.V(t, result.Documentation.Repository.Summary).Equal("A repository summary")
		gt.V(t, failures).Equal(0)
	})

	t.Run("zero retries fails on the first error", func(t *testing.T) {
		llm := newLLMStub()
		llm.failAll["summary"] = true

		policy := noWaitPolicy()
		policy.MaxRetries = 0
		uc := usecase.New(infra.New(
			infra.WithGitHub(newFactoryMock(newGitHubMock(defaultNodes()...))),
			infra.WithLLM(llm.mock()),
			infra.WithDocumentRepository(memory.New()),
		), usecase.WithRetryPolicy(policy))

		_, err := uc.GenerateDocumentation(ctx, &model.GenerateDocumentationInput{
			RepoName: testRepoName,
			Token:    "tok",
		})
		gt.True(t, errors.Is(err, types.ErrLLMUnavailable))
		gt.V(t, llm.count("summary")).Equal(1)
	})
}
