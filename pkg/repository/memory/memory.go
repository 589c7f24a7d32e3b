package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
)

type documentRepository struct {
	mu            sync.RWMutex
	docs          map[string][]byte
	markdown      map[string]string
	conversations map[string][]*model.Conversation
}

// New creates a new in-memory repository
func New() interfaces.DocumentRepository {
	return &documentRepository{
		docs:          make(map[string][]byte),
		markdown:      make(map[string]string),
		conversations: make(map[string][]*model.Conversation),
	}
}

func (r *documentRepository) PutDocumentation(ctx context.Context, doc *model.RepositoryDocumentation, markdown string) error {
	name := doc.RepoName()
	if err := name.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository name", goerr.V("repo", name))
	}

	// Stored as JSON so callers never share pointers with the store
	raw, err := json.Marshal(doc)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal documentation", goerr.V("repo", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[name.StorageKey()] = raw
	r.markdown[name.StorageKey()] = markdown
	return nil
}

func (r *documentRepository) GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error) {
	r.mu.RLock()
	raw, ok := r.docs[name.StorageKey()]
	r.mu.RUnlock()

	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "documentation not found", goerr.V("repo", name))
	}

	var doc model.RepositoryDocumentation
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal documentation", goerr.V("repo", name))
	}
	return &doc, nil
}

func (r *documentRepository) PutConversation(ctx context.Context, conv *model.Conversation) error {
	if err := conv.RepoName.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository name", goerr.V("repo", conv.RepoName))
	}

	copied := *conv

	r.mu.Lock()
	defer r.mu.Unlock()

	key := conv.RepoName.StorageKey()
	r.conversations[key] = append(r.conversations[key], &copied)
	return nil
}

func (r *documentRepository) ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.conversations[name.StorageKey()]
	result := make([]*model.Conversation, 0, len(stored))
	for _, c := range stored {
		copied := *c
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	return result, nil
}
