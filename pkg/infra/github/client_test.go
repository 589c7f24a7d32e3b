package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra/github"
	"github.com/sujeethshingade/docster/pkg/utils/testutil"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestServer(t *testing.T) (*httptest.Server, *atomic.Value) {
	var lastAuth atomic.Value
	mux := http.NewServeMux()

	mux.HandleFunc("GET /repos/{owner}/{repo}", func(w http.ResponseWriter, r *http.Request) {
		lastAuth.Store(r.Header.Get("Authorization"))
		if r.PathValue("repo") != "hello" {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]string{"message": "Not Found"})
			return
		}
		writeJSON(t, w, map[string]any{
			"name":             "hello",
			"full_name":        "octo/hello",
			"description":      "hello world",
			"html_url":         "https://github.com/octo/hello",
			"language":         "Go",
			"default_branch":   "main",
			"stargazers_count": 3,
			"topics":           []string{"cli"},
			"owner":            map[string]any{"login": "octo"},
		})
	})

	mux.HandleFunc("GET /repos/{owner}/{repo}/contents/{path...}", func(w http.ResponseWriter, r *http.Request) {
		lastAuth.Store(r.Header.Get("Authorization"))
		switch r.PathValue("path") {
		case "":
			writeJSON(t, w, []map[string]any{
				{"type": "file", "name": "README.md", "path": "README.md", "size": 10},
				{"type": "dir", "name": "src", "path": "src"},
			})
		case "README.md":
			writeJSON(t, w, map[string]any{
				"type":     "file",
				"name":     "README.md",
				"path":     "README.md",
				"size":     5,
				"encoding": "base64",
				"content":  base64.StdEncoding.EncodeToString([]byte("hello")),
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]string{"message": "Not Found"})
		}
	})

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(t, w, map[string]string{"message": "Bad credentials"})
			return
		}
		writeJSON(t, w, map[string]any{"login": "octo", "name": "Octo Cat"})
	})

	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeJSON(t, w, []map[string]any{{"name": "second", "full_name": "octo/second"}})
			return
		}
		w.Header().Set("Link", `<`+"http://"+r.Host+`/user/repos?page=2>; rel="next"`)
		writeJSON(t, w, []map[string]any{{"name": "first", "full_name": "octo/first"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastAuth
}

func newFactory(t *testing.T, srv *httptest.Server) *github.Factory {
	u := gt.R1(url.Parse(srv.URL)).NoError(t)
	return github.NewFactory(github.WithBaseURL(u), github.WithRequestRate(1000))
}

func TestClientGetRepository(t *testing.T) {
	srv, lastAuth := newTestServer(t)
	ctx := context.Background()

	client := gt.R1(newFactory(t, srv).New(ctx, "good-token")).NoError(t)

	t.Run("returns metadata", func(t *testing.T) {
		repo := gt.R1(client.GetRepository(ctx, "octo/hello")).NoError(t)
		gt.V(t, repo.FullName).Equal("octo/hello")
		gt.V(t, repo.URL).Equal("https://github.com/octo/hello")
		gt.V(t, repo.Language).Equal("Go")
		gt.V(t, repo.OwnerLogin).Equal("octo")
		gt.V(t, repo.Topics).Equal([]string{"cli"})
		gt.V(t, lastAuth.Load().(string)).Equal("Bearer good-token")
	})

	t.Run("not found maps to repository not found", func(t *testing.T) {
		_, err := client.GetRepository(ctx, "octo/missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
	})
}

func TestClientGetContents(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	client := gt.R1(newFactory(t, srv).New(ctx, "good-token")).NoError(t)

	t.Run("directory listing", func(t *testing.T) {
		contents := gt.R1(client.GetContents(ctx, "octo/hello", "")).NoError(t)
		gt.True(t, contents.IsDir())
		gt.V(t, len(contents.Entries)).Equal(2)
		gt.V(t, contents.Entries[0].Type).Equal(types.TreeEntryFile)
		gt.V(t, contents.Entries[1].Type).Equal(types.TreeEntryDirectory)
		gt.V(t, contents.Entries[1].Path).Equal("src")
	})

	t.Run("single file is decoded", func(t *testing.T) {
		contents := gt.R1(client.GetContents(ctx, "octo/hello", "README.md")).NoError(t)
		gt.True(t, contents.IsFile())
		gt.V(t, string(contents.File.Data)).Equal("hello")
		gt.V(t, contents.File.Path).Equal("README.md")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := client.GetContents(ctx, "octo/hello", "nope.go")
		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
	})
}

func TestClientAuthenticatedUser(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	factory := newFactory(t, srv)

	t.Run("valid token", func(t *testing.T) {
		client := gt.R1(factory.New(ctx, "good-token")).NoError(t)
		user := gt.R1(client.GetAuthenticatedUser(ctx)).NoError(t)
		gt.V(t, user.Login).Equal("octo")
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		client := gt.R1(factory.New(ctx, "bad-token")).NoError(t)
		_, err := client.GetAuthenticatedUser(ctx)
		gt.True(t, errors.Is(err, types.ErrUnauthorized))
	})

	t.Run("empty token is rejected before any request", func(t *testing.T) {
		_, err := factory.New(ctx, "")
		gt.True(t, errors.Is(err, types.ErrUnauthorized))
	})
}

func TestClientsDoNotShareCredentials(t *testing.T) {
	srv, lastAuth := newTestServer(t)
	ctx := context.Background()
	factory := newFactory(t, srv)

	a := gt.R1(factory.New(ctx, "token-a")).NoError(t)
	b := gt.R1(factory.New(ctx, "token-b")).NoError(t)

	_ = gt.R1(a.GetRepository(ctx, "octo/hello")).NoError(t)
	gt.V(t, lastAuth.Load().(string)).Equal("Bearer token-a")

	_ = gt.R1(b.GetRepository(ctx, "octo/hello")).NoError(t)
	gt.V(t, lastAuth.Load().(string)).Equal("Bearer token-b")

	_ = gt.R1(a.GetRepository(ctx, "octo/hello")).NoError(t)
	gt.V(t, lastAuth.Load().(string)).Equal("Bearer token-a")
}

func TestClientListRepositories(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	client := gt.R1(newFactory(t, srv).New(ctx, "good-token")).NoError(t)

	repos := gt.R1(client.ListRepositories(ctx)).NoError(t)
	gt.V(t, len(repos)).Equal(2)
	gt.V(t, repos[0].Name).Equal("first")
	gt.V(t, repos[1].Name).Equal("second")
}

func TestClientLive(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	repoName := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")
	ctx := context.Background()

	client := gt.R1(github.NewFactory().New(ctx, types.GitHubToken(token))).NoError(t)
	repo := gt.R1(client.GetRepository(ctx, types.RepoName(repoName))).NoError(t)
	gt.V(t, repo.FullName).Equal(repoName)

	contents := gt.R1(client.GetContents(ctx, types.RepoName(repoName), "")).NoError(t)
	gt.True(t, contents.IsDir())
}
