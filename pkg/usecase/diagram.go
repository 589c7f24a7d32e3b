package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// PlaceholderDiagram replaces a flow diagram that could not be generated.
const PlaceholderDiagram = "flowchart LR\n    E[Error] -->|Generation failed| M[Please try again]"

type analyzedFile struct {
	File    string  `json:"file"`
	Content *string `json:"content"`
}

type codeAnalysis struct {
	Repository string             `json:"repository"`
	Files      []*analyzedFile    `json:"files"`
	Structure  []*model.TreeEntry `json:"structure"`
}

// generateDiagram never fails. Any error or unusable output yields
// PlaceholderDiagram.
func (x *UseCase) generateDiagram(ctx context.Context, repoName string, structure []*model.TreeEntry, files []*analyzedFile) string {
	logger := logging.From(ctx)

	if files == nil {
		files = []*analyzedFile{}
	}
	raw, err := json.MarshalIndent(codeAnalysis{
		Repository: repoName,
		Files:      files,
		Structure:  structure,
	}, "", "  ")
	if err != nil {
		logger.Warn("failed to marshal code analysis", slog.Any("error", err))
		return PlaceholderDiagram
	}

	prompt, err := x.prompts.render(PromptDiagram, diagramPrompt{Analysis: string(raw)})
	if err != nil {
		logger.Warn("failed to render diagram prompt", slog.Any("error", err))
		return PlaceholderDiagram
	}

	out, err := x.generate(ctx, prompt)
	if err != nil {
		logger.Warn("failed to generate diagram", slog.Any("error", err))
		return PlaceholderDiagram
	}

	diagram, ok := cleanDiagram(out)
	if !ok {
		logger.Warn("LLM returned an unusable diagram", slog.String("output", out))
		return PlaceholderDiagram
	}
	return diagram
}

// cleanDiagram strips code fences and surrounding blank lines. The result is
// usable only if it starts with a flowchart or graph header and has an edge.
func cleanDiagram(raw string) (string, bool) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}

	diagram := strings.Trim(strings.Join(lines, "\n"), "\n")
	header := strings.TrimSpace(diagram)
	if !strings.HasPrefix(header, "flowchart") && !strings.HasPrefix(header, "graph") {
		return "", false
	}
	if !strings.Contains(diagram, "-->") {
		return "", false
	}

	return strings.TrimLeft(diagram, " \t"), true
}
