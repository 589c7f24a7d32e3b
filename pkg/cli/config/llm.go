package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra/llm/gemini"
	"github.com/sujeethshingade/docster/pkg/infra/llm/ollama"
	"github.com/sujeethshingade/docster/pkg/utils/retry"
	"github.com/urfave/cli/v3"
)

type LLM struct {
	provider     string
	apiKey       types.LLMAPIKey `masq:"secret"`
	models       []string
	ollamaHost   string
	ollamaModel  string
	timeout      time.Duration
	maxRetries   int64
	retryDelay   time.Duration
	fileParallel int64
}

func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider [gemini|ollama]",
			Category:    "LLM",
			Value:       string(types.LLMProviderGemini),
			Destination: &x.provider,
			Sources:     cli.EnvVars("DOCSTER_LLM_PROVIDER"),
		},
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Category:    "LLM",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("DOCSTER_GEMINI_API_KEY", "GEMINI_API_KEY"),
		},
		&cli.StringSliceFlag{
			Name:        "gemini-model",
			Usage:       "Gemini models, tried in order until one is available",
			Category:    "LLM",
			Value:       gemini.DefaultModels,
			Destination: &x.models,
			Sources:     cli.EnvVars("DOCSTER_GEMINI_MODEL"),
		},
		&cli.StringFlag{
			Name:        "ollama-host",
			Usage:       "Ollama server URL",
			Category:    "LLM",
			Value:       ollama.DefaultHost,
			Destination: &x.ollamaHost,
			Sources:     cli.EnvVars("DOCSTER_OLLAMA_HOST", "OLLAMA_HOST"),
		},
		&cli.StringFlag{
			Name:        "ollama-model",
			Usage:       "Ollama model",
			Category:    "LLM",
			Value:       ollama.DefaultModel,
			Destination: &x.ollamaModel,
			Sources:     cli.EnvVars("DOCSTER_OLLAMA_MODEL"),
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout of a single LLM request",
			Category:    "LLM",
			Value:       gemini.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("DOCSTER_LLM_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "llm-max-retries",
			Usage:       "Retries after a failed LLM request",
			Category:    "LLM",
			Value:       retry.DefaultMaxRetries,
			Destination: &x.maxRetries,
			Sources:     cli.EnvVars("DOCSTER_LLM_MAX_RETRIES"),
		},
		&cli.DurationFlag{
			Name:        "llm-retry-delay",
			Usage:       "Wait before the first retry, doubled on every further retry",
			Category:    "LLM",
			Value:       retry.DefaultInitialDelay,
			Destination: &x.retryDelay,
			Sources:     cli.EnvVars("DOCSTER_LLM_RETRY_DELAY"),
		},
		&cli.Int64Flag{
			Name:        "llm-file-concurrency",
			Usage:       "Files documented in parallel during a run",
			Category:    "LLM",
			Value:       1,
			Destination: &x.fileParallel,
			Sources:     cli.EnvVars("DOCSTER_LLM_FILE_CONCURRENCY"),
		},
	}
}

func (x *LLM) New() (interfaces.LLM, error) {
	provider := types.LLMProvider(x.provider)
	if err := provider.Validate(); err != nil {
		return nil, err
	}

	switch provider {
	case types.LLMProviderOllama:
		return ollama.New(x.ollamaHost, x.ollamaModel)

	default:
		if x.apiKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "--gemini-api-key is required for the gemini provider")
		}
		return gemini.New(x.apiKey,
			gemini.WithModels(x.models...),
			gemini.WithHTTPClient(&http.Client{Timeout: x.timeout}),
		)
	}
}

func (x *LLM) RetryPolicy() (retry.Policy, error) {
	if x.maxRetries < 0 {
		return retry.Policy{}, goerr.Wrap(types.ErrInvalidOption, "--llm-max-retries must not be negative", goerr.V("value", x.maxRetries))
	}

	policy := retry.DefaultPolicy()
	policy.MaxRetries = int(x.maxRetries)
	policy.InitialDelay = x.retryDelay
	return policy, nil
}

func (x *LLM) FileConcurrency() int {
	return int(x.fileParallel)
}

func (x *LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Provider", x.provider),
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.Any("Models", x.models),
		slog.String("OllamaHost", x.ollamaHost),
		slog.String("OllamaModel", x.ollamaModel),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("MaxRetries", x.maxRetries),
		slog.Duration("RetryDelay", x.retryDelay),
		slog.Int64("FileConcurrency", x.fileParallel),
	)
}
