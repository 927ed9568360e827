package db

import (
	"database/sql"
	"log/slog"
)

// NewTestDB wraps an already opened pool, usually a sqlmock one, with logging discarded
func NewTestDB(sqlDB *sql.DB) *DB {
	return &DB{DB: sqlDB, logger: slog.New(slog.DiscardHandler)}
}
