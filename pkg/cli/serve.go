package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/sujeethshingade/docster/pkg/cli/config"
	"github.com/sujeethshingade/docster/pkg/controller/server"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

const defaultPort = "5000"

func serveCommand() *cli.Command {
	var (
		addr              string
		port              string
		frontendURL       string
		generationTimeout time.Duration

		core   coreConfig
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address, overrides --port",
			Sources:     cli.EnvVars("DOCSTER_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "port",
			Usage:       "Listening port on all interfaces",
			Value:       defaultPort,
			Sources:     cli.EnvVars("DOCSTER_PORT", "PORT"),
			Destination: &port,
		},
		&cli.StringFlag{
			Name:        "frontend-url",
			Usage:       "Frontend origin allowed by CORS and target of the OAuth redirect",
			Value:       server.DefaultFrontendURL,
			Sources:     cli.EnvVars("DOCSTER_FRONTEND_URL", "FRONTEND_URL"),
			Destination: &frontendURL,
		},
		&cli.DurationFlag{
			Name:        "generation-timeout",
			Usage:       "Upper bound of a single documentation generation run",
			Value:       server.DefaultGenerationTimeout,
			Sources:     cli.EnvVars("DOCSTER_GENERATION_TIMEOUT"),
			Destination: &generationTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			core.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if addr == "" {
				addr = net.JoinHostPort("", port)
			}

			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("FrontendURL", frontendURL),
				slog.Any("GenerationTimeout", generationTimeout),
				slog.Any("GitHub", &core.github),
				slog.Any("LLM", &core.llm),
				slog.Any("Prompt", &core.prompt),
				slog.Any("Storage", &core.storage),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			var extra []infra.Option
			if oauth, err := core.github.NewOAuth(); err != nil {
				return err
			} else if oauth != nil {
				extra = append(extra, infra.WithGitHubOAuth(oauth))
			} else {
				logging.Default().Warn("GitHub OAuth App is not configured, /api/github/connect is disabled")
			}

			uc, err := core.newUseCase(ctx, extra...)
			if err != nil {
				return err
			}

			s := server.New(uc,
				server.WithFrontendURL(frontendURL),
				server.WithGenerationTimeout(generationTimeout),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// generation responds only after the whole run
				WriteTimeout: generationTimeout + 5*time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
