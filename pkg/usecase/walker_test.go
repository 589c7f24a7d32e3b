package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/usecase"
)

func TestIsImportantFile(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"README.md", true},
		{"readme.md", true},
		{"LICENSE", true},
		{"Dockerfile", true},
		{".env.example", true},
		{"CONTRIBUTING.md", true},
		{"main.go", true},
		{"App.TSX", true},
		{"lib.hpp", true},
		{"notes.txt", false},
		{"Makefile", false},
		{"go.mod", false},
		{"docs.md", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, usecase.IsImportantFileForTest(tc.name)).Equal(tc.expected)
		})
	}
}

func TestListImportantFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("parent files come before subdirectory files", func(t *testing.T) {
		gh := newGitHubMock(
			dirNode("src"),
			fileNode("README.md", "# hello"),
			fileNode("src/app.py", "print(1)"),
			dirNode("src/lib"),
			fileNode("src/lib/util.go", "package lib"),
			fileNode("main.go", "package main"),
			fileNode("notes.txt", "skip me"),
		)

		files := gt.R1(usecase.ListImportantFilesForTest(ctx, gh, testRepoName, "")).NoError(t)
		gt.V(t, files).Equal([]string{
			"README.md",
			"main.go",
			"src/app.py",
			"src/lib/util.go",
		})
	})

	t.Run("pruned directories are not listed", func(t *testing.T) {
		gh := newGitHubMock(
			dirNode("Node_Modules"),
			fileNode("Node_Modules/dep.js", "x"),
			dirNode("build"),
			fileNode("build/out.js", "x"),
			dirNode(".git"),
			fileNode(".git/hook.py", "x"),
			dirNode("venv"),
			dirNode("dist"),
			fileNode("index.js", "x"),
		)

		files := gt.R1(usecase.ListImportantFilesForTest(ctx, gh, testRepoName, "")).NoError(t)
		gt.V(t, files).Equal([]string{"index.js"})

		for _, call := range gh.GetContentsCalls() {
			gt.V(t, call.Path).Equal("")
		}
	})

	t.Run("empty repository yields no files", func(t *testing.T) {
		gh := newGitHubMock()
		files := gt.R1(usecase.ListImportantFilesForTest(ctx, gh, testRepoName, "")).NoError(t)
		gt.V(t, len(files)).Equal(0)
	})

	t.Run("listing failure aborts the walk", func(t *testing.T) {
		gh := newGitHubMock(
			dirNode("src"),
			fileNode("main.go", "package main"),
		)
		base := gh.GetContentsFunc
		gh.GetContentsFunc = func(ctx context.Context, repo types.RepoName, path string) (*model.Contents, error) {
			if path == "src" {
				return nil, goerr.New("network error")
			}
			return base(ctx, repo, path)
		}

		_, err := usecase.ListImportantFilesForTest(ctx, gh, testRepoName, "")
		gt.Error(t, err)
	})

	t.Run("file where a directory was expected is an error", func(t *testing.T) {
		gh := newGitHubMock(fileNode("main.go", "package main"))

		_, err := usecase.ListImportantFilesForTest(ctx, gh, testRepoName, "main.go")
		gt.True(t, errors.Is(err, types.ErrNotADirectory))
	})
}

func TestBuildTree(t *testing.T) {
	ctx := context.Background()
	gh := newGitHubMock(
		fileNode("README.md", "# hello"),
		dirNode("node_modules"),
		fileNode("node_modules/dep.js", "x"),
		dirNode("src"),
		fileNode("src/notes.txt", "text"),
	)

	tree := gt.R1(usecase.BuildTreeForTest(ctx, gh, testRepoName, "")).NoError(t)
	gt.V(t, len(tree)).Equal(3)

	gt.V(t, tree[0].Name).Equal("README.md")
	gt.V(t, tree[0].Type).Equal(types.TreeEntryFile)

	// No filtering: pruned directories and unimportant files are kept
	gt.V(t, tree[1].Path).Equal("node_modules")
	gt.V(t, len(tree[1].Contents)).Equal(1)
	gt.V(t, tree[2].Contents[0].Path).Equal("src/notes.txt")
}
