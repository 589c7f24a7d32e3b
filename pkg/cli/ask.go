package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func askCommand() *cli.Command {
	var (
		repoName string
		question string

		core coreConfig
	)

	return &cli.Command{
		Name:    "ask",
		Aliases: []string{"a"},
		Usage:   "Ask a question about a repository with stored documentation",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository as owner/repo",
				Required:    true,
				Destination: &repoName,
			},
			&cli.StringFlag{
				Name:        "question",
				Aliases:     []string{"q"},
				Usage:       "Question to answer",
				Required:    true,
				Destination: &question,
			},
		}, core.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := core.newUseCase(ctx)
			if err != nil {
				return err
			}

			conv, err := uc.AnswerQuestion(ctx, &model.AnswerQuestionInput{
				RepoName: types.RepoName(repoName),
				Question: question,
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(c.Root().Writer, conv.Answer); err != nil {
				return goerr.Wrap(err, "failed to write answer")
			}
			return nil
		},
	}
}
