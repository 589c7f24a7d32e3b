package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/usecase"
)

func newStoredDocumentation() *model.RepositoryDocumentation {
	return &model.RepositoryDocumentation{
		Repository: model.RepositoryInfo{
			Name:        "hello",
			Owner:       "octo",
			URL:         "https://github.com/octo/hello",
			Description: "A test repository",
			Summary:     "Hello prints greetings.",
		},
		Files: []*model.FileDocumentation{
			{FilePath: "README.md", Documentation: "Project overview.", GeneratedAt: testTime},
			{FilePath: "cmd/server.go", Documentation: "Starts the HTTP server on a port.", GeneratedAt: testTime},
			{FilePath: "pkg/db.go", Documentation: "Database access with retries.", GeneratedAt: testTime},
		},
		GeneratedAt: testTime,
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("without diagram", func(t *testing.T) {
		doc := newStoredDocumentation()
		doc.Files = doc.Files[:1]

		expected := "# hello Documentation\n" +
			"\n" +
			"## Repository\n" +
			"\n" +
			"**Name:** hello\n" +
			"**Owner:** octo\n" +
			"**URL:** https://github.com/octo/hello\n" +
			"**Description:** A test repository\n" +
			"\n" +
			"## Summary\n" +
			"\n" +
			"Hello prints greetings.\n" +
			"\n" +
			"## Files\n" +
			"\n" +
			"### README.md\n" +
			"\n" +
			"Project overview.\n" +
			"\n" +
			"---\n" +
			"Generated at: 2024-05-01T12:00:00Z"

		gt.V(t, usecase.RenderMarkdown(doc)).Equal(expected)
	})

	t.Run("with diagram", func(t *testing.T) {
		doc := newStoredDocumentation()
		doc.Diagrams = &model.Diagrams{Flow: "flowchart LR\n    A --> B"}

		md := usecase.RenderMarkdown(doc)
		gt.S(t, md).Contains("## Diagrams\n\n### Flow Diagram\n\n```mermaid\nflowchart LR\n    A --> B\n```\n\n---")
		gt.S(t, md).Contains("### cmd/server.go\n\nStarts the HTTP server on a port.\n")
	})

	t.Run("same input renders the same output", func(t *testing.T) {
		doc := newStoredDocumentation()
		gt.V(t, usecase.RenderMarkdown(doc)).Equal(usecase.RenderMarkdown(doc))
	})
}
