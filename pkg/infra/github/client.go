package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const defaultTimeout = 30 * time.Second

// Factory builds a GitHub client per credential. It holds no token itself.
type Factory struct {
	baseURL   *url.URL
	transport http.RoundTripper
	timeout   time.Duration
	rps       float64
}

var _ interfaces.GitHubFactory = (*Factory)(nil)

type Option func(*Factory)

// WithBaseURL points clients at another API root, e.g. GitHub Enterprise or a test server.
func WithBaseURL(u *url.URL) Option {
	return func(x *Factory) {
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		x.baseURL = u
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Factory) {
		x.transport = tr
	}
}

func WithTimeout(d time.Duration) Option {
	return func(x *Factory) {
		x.timeout = d
	}
}

func WithRequestRate(rps float64) Option {
	return func(x *Factory) {
		x.rps = rps
	}
}

func NewFactory(options ...Option) *Factory {
	f := &Factory{
		transport: http.DefaultTransport,
		timeout:   defaultTimeout,
		rps:       DefaultRequestRate,
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

func (x *Factory) New(ctx context.Context, token types.GitHubToken) (interfaces.GitHub, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is empty")
	}

	httpClient := &http.Client{
		Timeout: x.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base: &rateLimitTransport{
				base:    x.transport,
				limiter: newRateLimiter(x.rps),
			},
		},
	}

	client := gh.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}

	return &Client{client: client}, nil
}

// Client is a GitHub REST client bound to one user credential.
type Client struct {
	client *gh.Client
}

var _ interfaces.GitHub = (*Client)(nil)

// wrapError maps GitHub responses onto domain errors. Rate limit errors are
// kept generic so they surface as server errors.
func wrapError(err error, resp *gh.Response, msg string, values ...goerr.Option) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return goerr.Wrap(err, msg, values...)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return goerr.Wrap(types.ErrUnauthorized, msg, append(values, goerr.V("cause", err.Error()))...)
		case http.StatusForbidden, http.StatusNotFound:
			return goerr.Wrap(types.ErrRepositoryNotFound, msg, append(values, goerr.V("cause", err.Error()))...)
		}
	}

	return goerr.Wrap(err, msg, values...)
}

func toRepository(repo *gh.Repository) *model.GitHubRepository {
	return &model.GitHubRepository{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		URL:           repo.GetHTMLURL(),
		Language:      repo.GetLanguage(),
		DefaultBranch: repo.GetDefaultBranch(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		Topics:        repo.Topics,
		OwnerLogin:    repo.GetOwner().GetLogin(),
		Private:       repo.GetPrivate(),
	}
}

func (x *Client) GetRepository(ctx context.Context, repo types.RepoName) (*model.GitHubRepository, error) {
	logging.From(ctx).Debug("fetching repository metadata", slog.Any("repo", repo))

	r, resp, err := x.client.Repositories.Get(ctx, repo.Owner(), repo.Name())
	if err != nil {
		return nil, wrapError(err, resp, "failed to get repository", goerr.V("repo", repo))
	}

	return toRepository(r), nil
}

// GetContents lists a directory or fetches a file. The caller gets a tagged
// result and never has to guess which of the two came back.
func (x *Client) GetContents(ctx context.Context, repo types.RepoName, path string) (*model.Contents, error) {
	file, dir, resp, err := x.client.Repositories.GetContents(ctx, repo.Owner(), repo.Name(), path, nil)
	if err != nil {
		return nil, wrapError(err, resp, "failed to get contents", goerr.V("repo", repo), goerr.V("path", path))
	}

	if file != nil {
		data, err := file.GetContent()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode file content", goerr.V("repo", repo), goerr.V("path", path))
		}

		return &model.Contents{
			Kind: types.ContentKindFile,
			File: &model.FileContent{
				Path: file.GetPath(),
				Name: file.GetName(),
				Size: file.GetSize(),
				Data: []byte(data),
			},
		}, nil
	}

	entries := make([]*model.TreeEntry, 0, len(dir))
	for _, c := range dir {
		entryType := types.TreeEntryFile
		if c.GetType() == "dir" {
			entryType = types.TreeEntryDirectory
		}
		entries = append(entries, &model.TreeEntry{
			Type: entryType,
			Name: c.GetName(),
			Path: c.GetPath(),
			Size: c.GetSize(),
		})
	}

	return &model.Contents{
		Kind:    types.ContentKindDirectory,
		Entries: entries,
	}, nil
}

func (x *Client) GetAuthenticatedUser(ctx context.Context) (*model.GitHubUser, error) {
	user, resp, err := x.client.Users.Get(ctx, "")
	if err != nil {
		return nil, wrapError(err, resp, "failed to get authenticated user")
	}

	return &model.GitHubUser{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

func (x *Client) ListRepositories(ctx context.Context) ([]*model.GitHubRepository, error) {
	var repos []*model.GitHubRepository
	opts := &gh.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := x.client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, wrapError(err, resp, "failed to list repositories")
		}

		for _, r := range result {
			repos = append(repos, toRepository(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}
