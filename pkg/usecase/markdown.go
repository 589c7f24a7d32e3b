package usecase

import (
	"strings"
	"time"

	"github.com/sujeethshingade/docster/pkg/domain/model"
)

// RenderMarkdown renders the stored documentation as a Markdown document. It
// depends only on doc.
func RenderMarkdown(doc *model.RepositoryDocumentation) string {
	repo := doc.Repository
	lines := []string{
		"# " + repo.Name + " Documentation",
		"",
		"## Repository",
		"",
		"**Name:** " + repo.Name,
		"**Owner:** " + repo.Owner,
		"**URL:** " + repo.URL,
		"**Description:** " + repo.Description,
		"",
		"## Summary",
		"",
		repo.Summary,
		"",
		"## Files",
		"",
	}

	for _, f := range doc.Files {
		lines = append(lines,
			"### "+f.FilePath,
			"",
			f.Documentation,
			"",
		)
	}

	if doc.Diagrams != nil && doc.Diagrams.Flow != "" {
		lines = append(lines,
			"## Diagrams",
			"",
			"### Flow Diagram",
			"",
			"```mermaid",
			doc.Diagrams.Flow,
			"```",
			"",
		)
	}

	lines = append(lines,
		"---",
		"Generated at: "+doc.GeneratedAt.UTC().Format(time.RFC3339),
	)

	return strings.Join(lines, "\n")
}
