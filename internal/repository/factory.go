package repository

import (
	"context"
	"fmt"

	"doc-quiz/internal/config"
	"doc-quiz/internal/database"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
)

// Repositories bundles the stores used by the services.
type Repositories struct {
	Collections domain.CollectionRepository
	Performance domain.PerformanceRepository
	Users       domain.UserRepository
	Tx          domain.TransactionManager

	close func() error
}

// Close releases the backing database, if any.
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewRepositories builds the stores for the configured driver. The SQLite
// driver applies pending migrations before returning.
func NewRepositories(ctx context.Context, cfg config.StoreConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.StoreDriverFile, "":
		collections, err := NewFileCollectionRepository(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		performance, err := NewFilePerformanceRepository(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		users, err := NewFileUserRepository(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Get().Info("Using file store", zap.String("data_dir", cfg.DataDir))
		return &Repositories{
			Collections: collections,
			Performance: performance,
			Users:       users,
			Tx:          domain.NoopTransactionManager{},
		}, nil

	case config.StoreDriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db.DB); err != nil {
			db.Close()
			return nil, err
		}
		return &Repositories{
			Collections: NewSQLXCollectionRepository(db),
			Performance: NewSQLXPerformanceRepository(db),
			Users:       NewSQLXUserRepository(db),
			Tx:          NewSQLXTransactionManager(db),
			close:       db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
