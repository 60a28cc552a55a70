package repository

import (
	"context"
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS extractions (
	id                TEXT PRIMARY KEY,
	source_text       TEXT NOT NULL,
	recipient_name    TEXT NOT NULL DEFAULT '',
	recipient_address TEXT NOT NULL DEFAULT '',
	model_raw         TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions (created_at);
`

// Open opens (creating if needed) the sqlite record store at path and
// applies the schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("store.open", "path", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("store.open_failed", "path", path, "error", err)
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Error("store.migrate_failed", "error", err)
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the store, logging rather than returning the error; it is
// called on shutdown paths where nothing can act on it.
func Close(db *sql.DB, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := db.Close(); err != nil {
		logger.Warn("store.close_error", "error", err)
	}
}
