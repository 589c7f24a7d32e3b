package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Prompt loads prompt template overrides. The YAML file maps a prompt name
// (code, summary, question, diagram) to a text/template body.
type Prompt struct {
	file string
}

func (x *Prompt) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "prompt-file",
			Usage:       "YAML file overriding prompt templates",
			Category:    "LLM",
			Destination: &x.file,
			Sources:     cli.EnvVars("DOCSTER_PROMPT_FILE"),
		},
	}
}

func (x *Prompt) Load() (*usecase.Prompts, error) {
	if x.file == "" {
		return usecase.ParsePrompts(nil)
	}

	raw, err := os.ReadFile(x.file)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read prompt file", goerr.V("path", x.file))
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse prompt file",
			goerr.V("path", x.file),
			goerr.V("error", err.Error()),
		)
	}

	return usecase.ParsePrompts(overrides)
}

func (x *Prompt) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("File", x.file),
	)
}
