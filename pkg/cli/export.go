package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/gots/slice"
	"github.com/sujeethshingade/docster/pkg/cli/config"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/infra/export"
	"github.com/sujeethshingade/docster/pkg/usecase"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		repoName string
		format   string
		output   string

		storage config.Storage
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export stored documentation as PDF or DOCX",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository as owner/repo",
				Required:    true,
				Destination: &repoName,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Export format [pdf|docx]",
				Value:       string(types.ExportFormatPDF),
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (default: <owner>_<repo>_documentation.<format>)",
				Destination: &output,
			},
		}, storage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting export",
				slog.String("Repo", repoName),
				slog.String("Format", format),
				slog.Any("Storage", &storage),
			)

			repo, err := storage.NewRepository(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(
				infra.WithExporter(export.New()),
				infra.WithDocumentRepository(repo),
			))

			result, err := uc.ExportDocumentation(ctx, &model.ExportDocumentationInput{
				RepoName: types.RepoName(repoName),
				Format:   types.ExportFormat(strings.ToLower(format)),
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = result.FileName
			}
			return writeOutput(c, output, result.Data)
		},
	}
}
