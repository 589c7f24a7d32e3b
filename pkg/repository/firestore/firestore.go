package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/repository"
)

type Option func(*documentRepository)

// WithCollectionPrefix is prepended to the top level collection name, so that
// several deployments can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *documentRepository) {
		r.prefix = prefix
	}
}

// New creates a Firestore-based document repository. An empty databaseID
// selects the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.DocumentRepository, error) {
	if projectID == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "Firestore project ID is empty")
	}

	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &documentRepository{
		client: client,
	}
	for _, opt := range options {
		opt(repo)
	}

	return repo, nil
}
