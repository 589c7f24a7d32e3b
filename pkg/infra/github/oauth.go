package github

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"golang.org/x/oauth2"
	oauth2github "golang.org/x/oauth2/github"
)

// OAuth runs the GitHub OAuth web flow for an OAuth App.
type OAuth struct {
	config *oauth2.Config
}

var _ interfaces.GitHubOAuth = (*OAuth)(nil)

type OAuthOption func(*oauth2.Config)

// WithEndpoint replaces github.com endpoints, mainly for tests.
func WithEndpoint(endpoint oauth2.Endpoint) OAuthOption {
	return func(cfg *oauth2.Config) {
		cfg.Endpoint = endpoint
	}
}

func NewOAuth(clientID types.OAuthClientID, secret types.OAuthClientSecret, redirectURL string, options ...OAuthOption) (*OAuth, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client ID is empty")
	}
	if secret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client secret is empty")
	}

	cfg := &oauth2.Config{
		ClientID:     string(clientID),
		ClientSecret: string(secret),
		Endpoint:     oauth2github.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"repo"},
	}
	for _, opt := range options {
		opt(cfg)
	}

	return &OAuth{config: cfg}, nil
}

func (x *OAuth) AuthCodeURL(state string) string {
	return x.config.AuthCodeURL(state)
}

func (x *OAuth) Exchange(ctx context.Context, code string) (types.GitHubToken, error) {
	if code == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "authorization code is empty")
	}

	token, err := x.config.Exchange(ctx, code)
	if err != nil {
		return "", goerr.Wrap(types.ErrUnauthorized, "failed to exchange authorization code", goerr.V("cause", err.Error()))
	}
	if token.AccessToken == "" {
		return "", goerr.Wrap(types.ErrUnauthorized, "GitHub returned an empty access token")
	}

	return types.GitHubToken(token.AccessToken), nil
}
