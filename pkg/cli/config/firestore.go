package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID, required for --storage firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DOCSTER_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DOCSTER_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of Firestore collection names",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DOCSTER_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collectionPrefix", x.collectionPrefix),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.DocumentRepository, error) {
	if !x.Enabled() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--firestore-project-id is required for firestore storage")
	}
	return firestore.New(ctx, x.projectID, x.databaseID,
		firestore.WithCollectionPrefix(x.collectionPrefix),
	)
}
