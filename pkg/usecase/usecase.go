package usecase

import (
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/utils/retry"
)

type UseCase struct {
	clients         *infra.Clients
	retry           retry.Policy
	prompts         *Prompts
	fileConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRetryPolicy replaces the backoff policy applied to every LLM call.
func WithRetryPolicy(policy retry.Policy) Option {
	return func(x *UseCase) {
		x.retry = policy
	}
}

// WithPrompts replaces the embedded prompt templates.
func WithPrompts(prompts *Prompts) Option {
	return func(x *UseCase) {
		x.prompts = prompts
	}
}

// WithFileConcurrency sets how many files are documented in parallel. Values
// below 1 are treated as 1.
func WithFileConcurrency(n int) Option {
	return func(x *UseCase) {
		if n < 1 {
			n = 1
		}
		x.fileConcurrency = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		retry:           retry.DefaultPolicy(),
		prompts:         defaultPrompts,
		fileConcurrency: 1,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
