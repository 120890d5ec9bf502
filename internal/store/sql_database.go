package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/formit/auth-service/internal/logger"
)

// DB wraps the stdlib connection pool together with the placeholder-aware
// statement builder for the active dialect. PostgreSQL statements use $N
// placeholders, SQLite uses ?; repositories always build their queries
// through the builder so they stay dialect-agnostic.
type DB struct {
	*sql.DB

	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

// Dialect returns the goose dialect name of the underlying driver
// ("pgx" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}
