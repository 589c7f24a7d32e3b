package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/sujeethshingade/docster/pkg/cli/config"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/infra/export"
	"github.com/sujeethshingade/docster/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// coreConfig holds the configuration shared by every command that calls the
// LLM.
type coreConfig struct {
	github  config.GitHub
	llm     config.LLM
	prompt  config.Prompt
	storage config.Storage
}

func (x *coreConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.llm.Flags(),
		x.prompt.Flags(),
		x.storage.Flags(),
	)
}

// newUseCase builds all clients from the configuration. extra options are
// applied after the defaults.
func (x *coreConfig) newUseCase(ctx context.Context, extra ...infra.Option) (*usecase.UseCase, error) {
	factory, err := x.github.NewFactory()
	if err != nil {
		return nil, err
	}

	llm, err := x.llm.New()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM client")
	}

	repo, err := x.storage.NewRepository(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document repository")
	}

	policy, err := x.llm.RetryPolicy()
	if err != nil {
		return nil, err
	}

	prompts, err := x.prompt.Load()
	if err != nil {
		return nil, err
	}

	options := append([]infra.Option{
		infra.WithGitHub(factory),
		infra.WithLLM(llm),
		infra.WithExporter(export.New()),
		infra.WithDocumentRepository(repo),
	}, extra...)

	return usecase.New(infra.New(options...),
		usecase.WithRetryPolicy(policy),
		usecase.WithPrompts(prompts),
		usecase.WithFileConcurrency(x.llm.FileConcurrency()),
	), nil
}
