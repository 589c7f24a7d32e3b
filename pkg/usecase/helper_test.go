package usecase_test

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/mock"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/retry"
)

const testRepoName types.RepoName = "octo/hello"

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// node is one path of a fake repository. Directories are declared explicitly
// so listing order follows declaration order.
type node struct {
	path    string
	dir     bool
	content string
}

func dirNode(p string) node {
	return node{path: p, dir: true}
}

func fileNode(p, content string) node {
	return node{path: p, content: content}
}

func parentOf(p string) string {
	d := path.Dir(p)
	if d == "." {
		return ""
	}
	return d
}

func newTestRepository() *model.GitHubRepository {
	return &model.GitHubRepository{
		Name:        "hello",
		FullName:    "octo/hello",
		Description: "A test repository",
		URL:         "https://github.com/octo/hello",
		Language:    "Go",
		Topics:      []string{"docs", "cli"},
		OwnerLogin:  "octo",
	}
}

// newGitHubMock serves listings and file contents from nodes.
func newGitHubMock(nodes ...node) *mock.GitHubMock {
	byPath := map[string]node{"": {dir: true}}
	for _, n := range nodes {
		byPath[n.path] = n
	}

	return &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, repo types.RepoName) (*model.GitHubRepository, error) {
			if repo != testRepoName {
				return nil, goerr.Wrap(types.ErrRepositoryNotFound, "not found", goerr.V("repo", repo))
			}
			return newTestRepository(), nil
		},
		GetContentsFunc: func(ctx context.Context, repo types.RepoName, p string) (*model.Contents, error) {
			n, ok := byPath[p]
			if !ok {
				return nil, goerr.Wrap(types.ErrRepositoryNotFound, "no such path", goerr.V("path", p))
			}

			if !n.dir {
				return &model.Contents{
					Kind: types.ContentKindFile,
					File: &model.FileContent{
						Path: p,
						Name: path.Base(p),
						Size: len(n.content),
						Data: []byte(n.content),
					},
				}, nil
			}

			var entries []*model.TreeEntry
			for _, child := range nodes {
				if parentOf(child.path) != p {
					continue
				}
				entry := &model.TreeEntry{
					Type: types.TreeEntryFile,
					Name: path.Base(child.path),
					Path: child.path,
					Size: len(child.content),
				}
				if child.dir {
					entry.Type = types.TreeEntryDirectory
					entry.Size = 0
				}
				entries = append(entries, entry)
			}
			return &model.Contents{Kind: types.ContentKindDirectory, Entries: entries}, nil
		},
		GetAuthenticatedUserFunc: func(ctx context.Context) (*model.GitHubUser, error) {
			return &model.GitHubUser{Login: "octo"}, nil
		},
		ListRepositoriesFunc: func(ctx context.Context) ([]*model.GitHubRepository, error) {
			return []*model.GitHubRepository{newTestRepository()}, nil
		},
	}
}

func newFactoryMock(gh interfaces.GitHub) *mock.GitHubFactoryMock {
	return &mock.GitHubFactoryMock{
		NewFunc: func(ctx context.Context, token types.GitHubToken) (interfaces.GitHub, error) {
			return gh, nil
		},
	}
}

// llmStub answers by prompt kind and counts calls per kind.
type llmStub struct {
	mu       sync.Mutex
	calls    map[string]int
	failFile string
	failAll  map[string]bool
	diagram  string
}

func newLLMStub() *llmStub {
	return &llmStub{
		calls:   map[string]int{},
		failAll: map[string]bool{},
		diagram: "flowchart LR\n    A[CLI] --> B[Server]",
	}
}

func promptKind(prompt string) string {
	switch {
	case strings.Contains(prompt, "summarizing a code repository"):
		return "summary"
	case strings.Contains(prompt, "Mermaid flowchart"):
		return "diagram"
	case strings.Contains(prompt, "answers questions about codebases"):
		return "question"
	default:
		return "code"
	}
}

func (x *llmStub) count(kind string) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.calls[kind]
}

func (x *llmStub) mock() *mock.LLMMock {
	return &mock.LLMMock{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			kind := promptKind(prompt)

			x.mu.Lock()
			x.calls[kind]++
			x.mu.Unlock()

			if x.failAll[kind] {
				return "", goerr.New("LLM is down", goerr.V("kind", kind))
			}

			switch kind {
			case "summary":
				return "A repository summary", nil
			case "diagram":
				return x.diagram, nil
			case "question":
				return "The answer", nil
			}

			for _, line := range strings.Split(prompt, "\n") {
				if p, ok := strings.CutPrefix(line, "File path: "); ok {
					if x.failFile != "" && p == x.failFile {
						return "", goerr.New("LLM rejected the file", goerr.V("path", p))
					}
					return "Documentation of " + p, nil
				}
			}
			return "", goerr.New("unexpected prompt")
		},
	}
}

func noWaitPolicy() retry.Policy {
	return retry.Policy{
		MaxRetries:   3,
		InitialDelay: time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}
}
