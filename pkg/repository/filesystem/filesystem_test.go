package filesystem_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository/filesystem"
	"github.com/sujeethshingade/docster/pkg/repository/testhelper"
)

func TestFilesystemDocumentRepository(t *testing.T) {
	repo, err := filesystem.New(t.TempDir())
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestFilesystemLayout(t *testing.T) {
	baseDir := t.TempDir()
	repo := gt.R1(filesystem.New(baseDir)).NoError(t)
	ctx := context.Background()

	doc := testhelper.NewDocumentation("octo", "hello", time.Now(), "main.go")
	gt.NoError(t, repo.PutDocumentation(ctx, doc, "# hello Documentation"))

	dir := filepath.Join(baseDir, "docs", types.RepoName("octo/hello").StorageKey())
	md := gt.R1(os.ReadFile(filepath.Join(dir, "documentation.md"))).NoError(t)
	gt.V(t, string(md)).Equal("# hello Documentation")

	_, err := os.Stat(filepath.Join(dir, "documentation.json"))
	gt.NoError(t, err)

	// No temp files are left behind
	entries := gt.R1(os.ReadDir(dir)).NoError(t)
	gt.V(t, len(entries)).Equal(2)
}

func TestFilesystemConversationFiles(t *testing.T) {
	baseDir := t.TempDir()
	repo := gt.R1(filesystem.New(baseDir)).NoError(t)
	ctx := context.Background()

	name := types.RepoName("octo/hello")
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	gt.NoError(t, repo.PutConversation(ctx, testConversation(name, ts)))

	entries := gt.R1(os.ReadDir(filepath.Join(baseDir, "chats", name.StorageKey()))).NoError(t)
	gt.V(t, len(entries)).Equal(1)
	gt.True(t, strings.HasPrefix(entries[0].Name(), "conversation_2024-05-01T12-30-00Z_"))
	gt.False(t, strings.Contains(entries[0].Name(), ":"))
}

func TestFilesystemConcurrentWrites(t *testing.T) {
	repo := gt.R1(filesystem.New(t.TempDir())).NoError(t)
	ctx := context.Background()
	name := types.RepoName("octo/hello")

	gt.NoError(t, repo.PutDocumentation(ctx, testhelper.NewDocumentation("octo", "hello", time.Now(), "init.go"), "init"))

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			doc := testhelper.NewDocumentation("octo", "hello", time.Now(), fmt.Sprintf("file%d.go", i))
			errs <- repo.PutDocumentation(ctx, doc, fmt.Sprintf("md %d", i))
		}(i)
		go func() {
			defer wg.Done()
			doc, err := repo.GetDocumentation(ctx, name)
			if err == nil && len(doc.Files) != 1 {
				err = fmt.Errorf("partial record: %d files", len(doc.Files))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		gt.NoError(t, err)
	}
}

func TestNewRequiresDirectory(t *testing.T) {
	_, err := filesystem.New("")
	gt.Error(t, err)
}

func TestFilesystemFailedWriteKeepsPreviousRecord(t *testing.T) {
	baseDir := t.TempDir()
	repo := gt.R1(filesystem.New(baseDir)).NoError(t)
	ctx := context.Background()
	name := types.RepoName("octo/hello")

	gt.NoError(t, repo.PutDocumentation(ctx, testhelper.NewDocumentation("octo", "hello", time.Now(), "old.go"), "old"))

	// A non-empty directory in place of the Markdown file makes the rename fail
	md := filepath.Join(baseDir, "docs", name.StorageKey(), "documentation.md")
	gt.NoError(t, os.Remove(md))
	gt.NoError(t, os.MkdirAll(filepath.Join(md, "blocker"), 0o750))

	err := repo.PutDocumentation(ctx, testhelper.NewDocumentation("octo", "hello", time.Now(), "new.go"), "new")
	gt.Error(t, err)

	doc := gt.R1(repo.GetDocumentation(ctx, name)).NoError(t)
	gt.V(t, len(doc.Files)).Equal(1)
	gt.V(t, doc.Files[0].FilePath).Equal("old.go")
}
