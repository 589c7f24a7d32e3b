package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
	"github.com/sujeethshingade/docster/pkg/utils/safe"
)

const (
	docsDir  = "docs"
	chatsDir = "chats"

	documentationJSON     = "documentation.json"
	documentationMarkdown = "documentation.md"
)

// documentRepository keeps one directory per repository:
//
//	<base>/docs/<key>/documentation.json
//	<base>/docs/<key>/documentation.md
//	<base>/chats/<key>/conversation_<timestamp>_<id>.json
type documentRepository struct {
	baseDir string
	locks   sync.Map
}

// New creates a filesystem-based repository rooted at baseDir
func New(baseDir string) (interfaces.DocumentRepository, error) {
	if baseDir == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "storage directory is empty")
	}

	for _, dir := range []string{docsDir, chatsDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o750); err != nil {
			return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("path", filepath.Join(baseDir, dir)))
		}
	}

	return &documentRepository{baseDir: baseDir}, nil
}

func (r *documentRepository) lock(key string) func() {
	v, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func keyOf(name types.RepoName) (string, error) {
	if err := name.Validate(); err != nil {
		return "", goerr.Wrap(repository.ErrInvalidInput, "invalid repository name", goerr.V("repo", name))
	}
	return name.StorageKey(), nil
}

// writeFileAtomic writes data next to path and renames it into place, so a
// reader sees either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Sync(); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to sync temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, path); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to rename temp file", goerr.V("from", tmpName), goerr.V("to", path))
	}

	return nil
}

func (r *documentRepository) PutDocumentation(ctx context.Context, doc *model.RepositoryDocumentation, markdown string) error {
	key, err := keyOf(doc.RepoName())
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal documentation", goerr.V("repo", doc.RepoName()))
	}

	dir := filepath.Join(r.baseDir, docsDir, key)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return goerr.Wrap(err, "failed to create documentation directory", goerr.V("path", dir))
	}

	unlock := r.lock(key)
	defer unlock()

	// JSON is the record of truth and is replaced last
	if err := writeFileAtomic(filepath.Join(dir, documentationMarkdown), []byte(markdown)); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, documentationJSON), raw); err != nil {
		return err
	}

	return nil
}

func (r *documentRepository) GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error) {
	key, err := keyOf(name)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(r.baseDir, docsDir, key, documentationJSON)
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "documentation not found", goerr.V("repo", name))
		}
		return nil, goerr.Wrap(err, "failed to read documentation", goerr.V("path", path))
	}

	var doc model.RepositoryDocumentation
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode documentation", goerr.V("path", path))
	}

	return &doc, nil
}

func conversationFileName(ts time.Time) string {
	stamp := strings.ReplaceAll(ts.UTC().Format(time.RFC3339Nano), ":", "-")
	return "conversation_" + stamp + "_" + uuid.New().String()[:8] + ".json"
}

func (r *documentRepository) PutConversation(ctx context.Context, conv *model.Conversation) error {
	key, err := keyOf(conv.RepoName)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal conversation", goerr.V("repo", conv.RepoName))
	}

	dir := filepath.Join(r.baseDir, chatsDir, key)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return goerr.Wrap(err, "failed to create chat directory", goerr.V("path", dir))
	}

	return writeFileAtomic(filepath.Join(dir, conversationFileName(conv.Timestamp)), raw)
}

func (r *documentRepository) ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error) {
	key, err := keyOf(name)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(r.baseDir, chatsDir, key)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*model.Conversation{}, nil
		}
		return nil, goerr.Wrap(err, "failed to list conversations", goerr.V("path", dir))
	}

	convs := make([]*model.Conversation, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "conversation_") || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read conversation", goerr.V("path", path))
		}

		var conv model.Conversation
		if err := json.Unmarshal(raw, &conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("path", path))
		}
		convs = append(convs, &conv)
	}

	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].Timestamp.Before(convs[j].Timestamp)
	})

	return convs, nil
}
