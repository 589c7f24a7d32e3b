package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/cli/config"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

func clearGitHubEnv(t *testing.T) {
	unsetEnv(t,
		"DOCSTER_GITHUB_CLIENT_ID", "GITHUB_CLIENT_ID",
		"DOCSTER_GITHUB_CLIENT_SECRET", "GITHUB_CLIENT_SECRET",
		"DOCSTER_GITHUB_REDIRECT_URI", "GITHUB_REDIRECT_URI",
		"DOCSTER_GITHUB_API_URL", "DOCSTER_GITHUB_REQUEST_RATE",
	)
}

func TestGitHubNewOAuth(t *testing.T) {
	clearGitHubEnv(t)

	t.Run("not configured", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags())

		oauth, err := cfg.NewOAuth()
		gt.NoError(t, err)
		gt.True(t, oauth == nil)
	})

	t.Run("configured", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(),
			"--github-client-id", "client-id",
			"--github-client-secret", "client-secret",
			"--github-redirect-uri", "http://localhost:5000/api/github/callback",
		)

		oauth := gt.R1(cfg.NewOAuth()).NoError(t)
		gt.True(t, oauth != nil)
		gt.S(t, oauth.AuthCodeURL("state")).Contains("client_id=client-id")
	})
}

func TestGitHubNewFactory(t *testing.T) {
	clearGitHubEnv(t)

	t.Run("default API", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags())

		factory := gt.R1(cfg.NewFactory()).NoError(t)
		gt.True(t, factory != nil)
	})

	t.Run("invalid API URL", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--github-api-url", "://no-scheme")

		_, err := cfg.NewFactory()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
