package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/cli/config"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

func writePromptFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestPromptLoad(t *testing.T) {
	unsetEnv(t, "DOCSTER_PROMPT_FILE")

	t.Run("embedded defaults", func(t *testing.T) {
		var cfg config.Prompt
		parseFlags(t, cfg.Flags())

		prompts := gt.R1(cfg.Load()).NoError(t)
		gt.True(t, prompts != nil)
	})

	t.Run("override", func(t *testing.T) {
		path := writePromptFile(t, "summary: |\n  Summarize {{ .Name }} briefly.\n")

		var cfg config.Prompt
		parseFlags(t, cfg.Flags(), "--prompt-file", path)

		prompts := gt.R1(cfg.Load()).NoError(t)
		gt.True(t, prompts != nil)
	})

	t.Run("unknown prompt name", func(t *testing.T) {
		path := writePromptFile(t, "greeting: hello\n")

		var cfg config.Prompt
		parseFlags(t, cfg.Flags(), "--prompt-file", path)

		_, err := cfg.Load()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("broken YAML", func(t *testing.T) {
		path := writePromptFile(t, "summary: [unclosed\n")

		var cfg config.Prompt
		parseFlags(t, cfg.Flags(), "--prompt-file", path)

		_, err := cfg.Load()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg config.Prompt
		parseFlags(t, cfg.Flags(), "--prompt-file", filepath.Join(t.TempDir(), "none.yaml"))

		_, err := cfg.Load()
		gt.Error(t, err)
	})
}
