package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/usecase"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	var (
		repoName    string
		dir         string
		token       string
		withDiagram bool
		output      string

		core coreConfig
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate and store documentation of a GitHub repository",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository as owner/repo (auto-detect from git remote origin if not specified)",
				Sources:     cli.EnvVars("DOCSTER_REPO"),
				Destination: &repoName,
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Local work tree used for auto-detection of --repo",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "token",
				Aliases:     []string{"t"},
				Usage:       "GitHub access token",
				Sources:     cli.EnvVars("DOCSTER_GITHUB_TOKEN", "GITHUB_TOKEN"),
				Destination: &token,
			},
			&cli.BoolFlag{
				Name:        "diagram",
				Usage:       "Also generate a Mermaid architecture diagram",
				Destination: &withDiagram,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Write the rendered Markdown to this file, '-' for stdout",
				Destination: &output,
			},
		}, core.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			name := types.RepoName(repoName)
			if name == "" {
				detected, err := DetectRepoName(dir)
				if err != nil {
					return goerr.Wrap(err, "--repo is not set and auto-detection failed")
				}
				name = detected
			}

			logging.Default().Info("starting generate",
				slog.Any("Repo", name),
				slog.Bool("Diagram", withDiagram),
				slog.Any("LLM", &core.llm),
				slog.Any("Storage", &core.storage),
			)

			uc, err := core.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.GenerateDocumentation(ctx, &model.GenerateDocumentationInput{
				RepoName:    name,
				Token:       types.GitHubToken(token),
				WithDiagram: withDiagram,
			})
			if err != nil {
				return err
			}

			for _, skipped := range result.Skipped {
				logging.Default().Warn("file skipped",
					slog.String("path", skipped.FilePath),
					slog.String("reason", skipped.Reason),
				)
			}
			logging.Default().Info("documentation generated",
				slog.Any("Repo", name),
				slog.Int("Files", len(result.Documentation.Files)),
				slog.Int("Skipped", len(result.Skipped)),
			)

			return writeOutput(c, output, []byte(usecase.RenderMarkdown(result.Documentation)))
		},
	}
}

// writeOutput writes data to path. An empty path writes nothing and "-" means
// the command's standard output.
func writeOutput(c *cli.Command, path string, data []byte) error {
	switch path {
	case "":
		return nil

	case "-":
		if _, err := fmt.Fprint(c.Root().Writer, string(data)); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
		return nil

	default:
		if err := os.WriteFile(path, data, 0644); err != nil {
			return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
		}
		logging.Default().Info("output written", slog.String("path", path), slog.Int("bytes", len(data)))
		return nil
	}
}
