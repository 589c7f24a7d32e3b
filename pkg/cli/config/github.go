package config

import (
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	clientID     types.OAuthClientID
	clientSecret types.OAuthClientSecret `masq:"secret"`
	redirectURL  string
	apiBaseURL   string
	requestRate  float64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "GitHub",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("DOCSTER_GITHUB_CLIENT_ID", "GITHUB_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "GitHub",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("DOCSTER_GITHUB_CLIENT_SECRET", "GITHUB_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-redirect-uri",
			Usage:       "OAuth callback URL registered in the GitHub OAuth App",
			Category:    "GitHub",
			Destination: &x.redirectURL,
			Sources:     cli.EnvVars("DOCSTER_GITHUB_REDIRECT_URI", "GITHUB_REDIRECT_URI"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.apiBaseURL,
			Sources:     cli.EnvVars("DOCSTER_GITHUB_API_URL"),
		},
		&cli.FloatFlag{
			Name:        "github-request-rate",
			Usage:       "Maximum GitHub API requests per second per token",
			Category:    "GitHub",
			Value:       github.DefaultRequestRate,
			Destination: &x.requestRate,
			Sources:     cli.EnvVars("DOCSTER_GITHUB_REQUEST_RATE"),
		},
	}
}

// NewFactory returns a factory building one GitHub client per token.
func (x *GitHub) NewFactory() (interfaces.GitHubFactory, error) {
	options := []github.Option{
		github.WithRequestRate(x.requestRate),
	}

	if x.apiBaseURL != "" {
		u, err := url.Parse(x.apiBaseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.apiBaseURL))
		}
		options = append(options, github.WithBaseURL(u))
	}

	return github.NewFactory(options...), nil
}

// NewOAuth returns nil when no OAuth App is configured.
func (x *GitHub) NewOAuth() (interfaces.GitHubOAuth, error) {
	if x.clientID == "" {
		return nil, nil
	}
	return github.NewOAuth(x.clientID, x.clientSecret, x.redirectURL)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ClientID", x.clientID),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("RedirectURL", x.redirectURL),
		slog.String("APIBaseURL", x.apiBaseURL),
		slog.Float64("RequestRate", x.requestRate),
	)
}
