package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/cli"
	"github.com/sujeethshingade/docster/pkg/repository/filesystem"
	"github.com/sujeethshingade/docster/pkg/repository/testhelper"
	"github.com/sujeethshingade/docster/pkg/usecase"
)

// clearEnv removes variables that would override flag defaults.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DOCSTER_STORAGE", "DOCSTER_STORAGE_DIR",
		"DOCSTER_GEMINI_API_KEY", "GEMINI_API_KEY", "DOCSTER_LLM_PROVIDER",
		"DOCSTER_LOG_LEVEL", "DOCSTER_LOG_FORMAT", "DOCSTER_LOG_OUTPUT",
	} {
		t.Setenv(key, "")
		gt.NoError(t, os.Unsetenv(key))
	}
}

func TestExportCommand(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	repo := gt.R1(filesystem.New(dir)).NoError(t)
	doc := testhelper.NewDocumentation("octo", "hello", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), "README.md", "main.go")
	gt.NoError(t, repo.PutDocumentation(t.Context(), doc, usecase.RenderMarkdown(doc)))

	t.Run("docx to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "doc.docx")
		gt.NoError(t, cli.New().Run([]string{
			"docster", "export",
			"--repo", "octo/hello",
			"--format", "docx",
			"--storage", "fs",
			"--storage-dir", dir,
			"--output", out,
		}))

		data := gt.R1(os.ReadFile(out)).NoError(t)
		gt.True(t, bytes.HasPrefix(data, []byte("PK")))
	})

	t.Run("pdf to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "doc.pdf")
		gt.NoError(t, cli.New().Run([]string{
			"docster", "export",
			"--repo", "octo/hello",
			"--storage", "fs",
			"--storage-dir", dir,
			"--output", out,
		}))

		data := gt.R1(os.ReadFile(out)).NoError(t)
		gt.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("no stored documentation", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "doc.pdf")
		gt.Error(t, cli.New().Run([]string{
			"docster", "export",
			"--repo", "octo/unknown",
			"--storage", "fs",
			"--storage-dir", dir,
			"--output", out,
		}))

		_, err := os.Stat(out)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("unsupported format", func(t *testing.T) {
		gt.Error(t, cli.New().Run([]string{
			"docster", "export",
			"--repo", "octo/hello",
			"--format", "html",
			"--storage", "fs",
			"--storage-dir", dir,
		}))
	})
}

func TestAskCommandRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	gt.Error(t, cli.New().Run([]string{
		"docster", "ask",
		"--repo", "octo/hello",
		"--question", "What does it do?",
		"--storage", "memory",
	}))
}
