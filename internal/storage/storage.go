package storage

import (
	"context"
	"fmt"

	"asha_sphere/internal/config"
	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JournalRepository keeps entries newest first.
type JournalRepository interface {
	ListEntries(ctx context.Context) ([]models.JournalEntry, error)
	SaveEntry(ctx context.Context, entry *models.JournalEntry) error
}

// NewJournalRepository opens the backend selected by cfg.StorageBackend. The
// returned func releases it.
func NewJournalRepository(ctx context.Context, cfg *config.Config, log logger.Logger) (JournalRepository, func(), error) {
	op := "internal/storage/storage.go NewJournalRepository"

	switch cfg.StorageBackend {
	case config.BackendFile:
		log.Infof("using journal file %s", cfg.JournalFile)
		return NewFileJournalStorage(cfg.JournalFile, log), func() {}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: unable to connect to db: %w", op, err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: unable to ping db: %w", op, err)
		}

		js := NewJournalStorage(pool)
		if err := js.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("connected to db successfully")
		return js, pool.Close, nil
	}

	return nil, nil, fmt.Errorf("%s: unknown storage backend %q", op, cfg.StorageBackend)
}

var (
	_ JournalRepository = (*FileJournalStorage)(nil)
	_ JournalRepository = (*JournalStorage)(nil)
)
