package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository/filesystem"
	"github.com/sujeethshingade/docster/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

const DefaultStorageDir = "data"

// Storage selects where documentation and conversations are kept.
type Storage struct {
	backend   string
	dir       string
	firestore Firestore
}

func (x *Storage) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "storage",
			Usage:       "Storage backend [fs|memory|firestore]",
			Category:    "Storage",
			Value:       string(types.StorageFilesystem),
			Destination: &x.backend,
			Sources:     cli.EnvVars("DOCSTER_STORAGE"),
		},
		&cli.StringFlag{
			Name:        "storage-dir",
			Usage:       "Base directory of the fs backend",
			Category:    "Storage",
			Value:       DefaultStorageDir,
			Destination: &x.dir,
			Sources:     cli.EnvVars("DOCSTER_STORAGE_DIR"),
		},
	}

	return append(flags, x.firestore.Flags()...)
}

func (x *Storage) NewRepository(ctx context.Context) (interfaces.DocumentRepository, error) {
	switch types.StorageBackendName(x.backend) {
	case types.StorageFilesystem:
		return filesystem.New(x.dir)

	case types.StorageMemory:
		return memory.New(), nil

	case types.StorageFirestore:
		return x.firestore.NewRepository(ctx)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported storage backend", goerr.V("storage", x.backend))
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backend", x.backend),
		slog.String("Dir", x.dir),
		slog.Any("Firestore", &x.firestore),
	)
}
