package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionDocumentation = "documentation"
	collectionConversation  = "conversation"
)

type documentRepository struct {
	client *firestore.Client
	prefix string
}

type documentationRecord struct {
	Documentation *model.RepositoryDocumentation `firestore:"documentation"`
	Markdown      string                         `firestore:"markdown"`
	UpdatedAt     time.Time                      `firestore:"updated_at"`
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

func (r *documentRepository) docRef(name types.RepoName) (*firestore.DocumentRef, error) {
	if err := name.Validate(); err != nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid repository name", goerr.V("repo", name))
	}

	id, err := ToFirestoreID(name.Owner(), name.Name())
	if err != nil {
		return nil, err
	}

	return r.client.Collection(r.prefix + collectionDocumentation).Doc(id), nil
}

func (r *documentRepository) PutDocumentation(ctx context.Context, doc *model.RepositoryDocumentation, markdown string) error {
	ref, err := r.docRef(doc.RepoName())
	if err != nil {
		return err
	}

	// Set without merge replaces the whole record in a single write
	if _, err := ref.Set(ctx, &documentationRecord{
		Documentation: doc,
		Markdown:      markdown,
		UpdatedAt:     time.Now().UTC(),
	}); err != nil {
		return goerr.Wrap(err, "failed to save documentation", goerr.V("repo", doc.RepoName()))
	}

	return nil
}

func (r *documentRepository) GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error) {
	ref, err := r.docRef(name)
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "documentation not found",
				goerr.V("repo", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get documentation",
			goerr.V("repo", name),
		)
	}

	var record documentationRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode documentation",
			goerr.V("repo", name),
		)
	}
	if record.Documentation == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "documentation record is empty", goerr.V("repo", name))
	}

	return record.Documentation, nil
}

// Conversations live in a subcollection of the documentation document, so
// they can be written before any documentation exists.

func (r *documentRepository) PutConversation(ctx context.Context, conv *model.Conversation) error {
	ref, err := r.docRef(conv.RepoName)
	if err != nil {
		return err
	}

	if _, _, err := ref.Collection(collectionConversation).Add(ctx, conv); err != nil {
		return goerr.Wrap(err, "failed to save conversation", goerr.V("repo", conv.RepoName))
	}

	return nil
}

func (r *documentRepository) ListConversations(ctx context.Context, name types.RepoName) ([]*model.Conversation, error) {
	ref, err := r.docRef(name)
	if err != nil {
		return nil, err
	}

	iter := ref.Collection(collectionConversation).OrderBy("timestamp", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	convs := []*model.Conversation{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate conversations",
				goerr.V("repo", name),
			)
		}

		var conv model.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation")
		}

		convs = append(convs, &conv)
	}

	return convs, nil
}
