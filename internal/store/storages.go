package store

import (
	"context"
	"fmt"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/migrations"
)

// Storages groups all repositories into a single value that can be passed
// into the service layer.
type Storages struct {
	UserRepository      UserRepository
	OTPSecretRepository OTPSecretRepository

	db *DB
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a connection to the configured backend (PostgreSQL or a
//     file-backed SQLite database for local runs).
//  2. Runs pending schema migrations for the active dialect.
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established, the
// driver is unknown, or migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(context.Background(), cfg.DB, logger)
	case "sqlite3":
		db, err = NewConnectSQLite(context.Background(), cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB, db.Dialect()); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		OTPSecretRepository: NewOTPSecretRepository(db, logger),
		db:                  db,
	}, nil
}
