package testhelper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
)

// TestAll runs all test cases for DocumentRepository
// This is the main entry point for testing any DocumentRepository implementation
func TestAll(t *testing.T, repo interfaces.DocumentRepository) {
	t.Run("DocumentationCRUD", func(t *testing.T) {
		TestDocumentationCRUD(t, repo)
	})
	t.Run("DocumentationKeyCollision", func(t *testing.T) {
		TestDocumentationKeyCollision(t, repo)
	})
	t.Run("DocumentationRequestedName", func(t *testing.T) {
		TestDocumentationRequestedName(t, repo)
	})
	t.Run("ConversationAppend", func(t *testing.T) {
		TestConversationAppend(t, repo)
	})
}

func newRepoName() (string, string, types.RepoName) {
	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	name := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	return owner, name, types.RepoName(owner + "/" + name)
}

// NewDocumentation builds a small documentation record for tests
func NewDocumentation(owner, name string, at time.Time, files ...string) *model.RepositoryDocumentation {
	doc := &model.RepositoryDocumentation{
		Repository: model.RepositoryInfo{
			Name:        name,
			Owner:       owner,
			URL:         "https://github.com/" + owner + "/" + name,
			Description: "test repository",
			Summary:     "summary of " + name,
		},
		GeneratedAt: at,
	}
	for _, f := range files {
		doc.Files = append(doc.Files, &model.FileDocumentation{
			FilePath:      f,
			Documentation: "documentation of " + f,
			GeneratedAt:   at,
		})
	}
	return doc
}

// TestDocumentationCRUD tests put, get and overwrite of documentation
func TestDocumentationCRUD(t *testing.T, repo interfaces.DocumentRepository) {
	ctx := context.Background()
	owner, name, repoName := newRepoName()
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Not found before the first write
	_, err := repo.GetDocumentation(ctx, repoName)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	doc := NewDocumentation(owner, name, now, "README.md", "main.go")
	doc.Diagrams = &model.Diagrams{Flow: "flowchart LR\n    A --> B"}
	gt.NoError(t, repo.PutDocumentation(ctx, doc, "# markdown"))

	retrieved, err := repo.GetDocumentation(ctx, repoName)
	gt.NoError(t, err)
	gt.V(t, retrieved.Repository).Equal(doc.Repository)
	gt.V(t, len(retrieved.Files)).Equal(2)
	gt.V(t, retrieved.Files[0].FilePath).Equal("README.md")
	gt.V(t, retrieved.Files[1].FilePath).Equal("main.go")
	gt.V(t, retrieved.Files[1].Documentation).Equal("documentation of main.go")
	gt.True(t, retrieved.GeneratedAt.Equal(now))
	gt.V(t, retrieved.Diagrams.Flow).Equal(doc.Diagrams.Flow)

	// Reading twice gives the same record
	again, err := repo.GetDocumentation(ctx, repoName)
	gt.NoError(t, err)
	gt.V(t, again.Repository).Equal(retrieved.Repository)
	gt.V(t, len(again.Files)).Equal(len(retrieved.Files))

	// Overwrite replaces the whole record
	later := now.Add(time.Hour)
	updated := NewDocumentation(owner, name, later, "cmd/app.go")
	gt.NoError(t, repo.PutDocumentation(ctx, updated, "# updated"))

	retrieved, err = repo.GetDocumentation(ctx, repoName)
	gt.NoError(t, err)
	gt.V(t, len(retrieved.Files)).Equal(1)
	gt.V(t, retrieved.Files[0].FilePath).Equal("cmd/app.go")
	gt.True(t, retrieved.GeneratedAt.Equal(later))
	gt.True(t, retrieved.Diagrams == nil)
}

// TestDocumentationKeyCollision checks that names differing only in where
// the slash sits are stored separately
func TestDocumentationKeyCollision(t *testing.T, repo interfaces.DocumentRepository) {
	ctx := context.Background()
	suffix := uuid.New().String()[:8]
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := NewDocumentation("a_"+suffix, "c", now, "first.go")
	second := NewDocumentation("a", suffix+"_c", now, "second.go")

	gt.NoError(t, repo.PutDocumentation(ctx, first, "first"))
	gt.NoError(t, repo.PutDocumentation(ctx, second, "second"))

	got1, err := repo.GetDocumentation(ctx, first.RepoName())
	gt.NoError(t, err)
	gt.V(t, got1.Files[0].FilePath).Equal("first.go")

	got2, err := repo.GetDocumentation(ctx, second.RepoName())
	gt.NoError(t, err)
	gt.V(t, got2.Files[0].FilePath).Equal("second.go")
}

// TestDocumentationRequestedName checks that a record is stored under the
// name it was requested for, not the spelling GitHub reported
func TestDocumentationRequestedName(t *testing.T, repo interfaces.DocumentRepository) {
	ctx := context.Background()
	owner, name, _ := newRepoName()
	requested := types.RepoName(strings.ToUpper(owner) + "/" + strings.ToUpper(name))

	doc := NewDocumentation(owner, name, time.Now().UTC(), "main.go")
	doc.Key = requested
	gt.NoError(t, repo.PutDocumentation(ctx, doc, "# markdown"))

	got, err := repo.GetDocumentation(ctx, requested)
	gt.NoError(t, err)
	gt.V(t, got.RepoName()).Equal(requested)
	gt.V(t, got.Repository.Owner).Equal(owner)
	gt.V(t, got.Files[0].FilePath).Equal("main.go")
}

// TestConversationAppend tests that conversations are appended and listed in time order
func TestConversationAppend(t *testing.T, repo interfaces.DocumentRepository) {
	ctx := context.Background()
	_, _, repoName := newRepoName()
	base := time.Now().UTC().Truncate(time.Millisecond)

	convs, err := repo.ListConversations(ctx, repoName)
	gt.NoError(t, err)
	gt.V(t, len(convs)).Equal(0)

	// Written out of order on purpose
	gt.NoError(t, repo.PutConversation(ctx, &model.Conversation{
		RepoName: repoName, Question: "second?", Answer: "b", Timestamp: base.Add(time.Second),
	}))
	gt.NoError(t, repo.PutConversation(ctx, &model.Conversation{
		RepoName: repoName, Question: "first?", Answer: "a", Timestamp: base,
	}))
	// Same timestamp must not overwrite
	gt.NoError(t, repo.PutConversation(ctx, &model.Conversation{
		RepoName: repoName, Question: "first again?", Answer: "c", Timestamp: base,
	}))

	convs, err = repo.ListConversations(ctx, repoName)
	gt.NoError(t, err)
	gt.V(t, len(convs)).Equal(3)
	gt.V(t, convs[2].Question).Equal("second?")
	gt.V(t, convs[0].RepoName).Equal(repoName)
	gt.True(t, convs[0].Timestamp.Equal(base))

	// Other repositories are unaffected
	_, _, other := newRepoName()
	convs, err = repo.ListConversations(ctx, other)
	gt.NoError(t, err)
	gt.V(t, len(convs)).Equal(0)
}
