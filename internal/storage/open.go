package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"notekeeper/internal/logging"
	"notekeeper/internal/storage/migrations"
)

// Backend selection values accepted by Open.
const (
	BackendAuto   = "auto"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open selects and initializes the store backend once at startup and reports
// which variant was chosen.
//
// With BackendAuto the durable SQLite store is tried first; if it cannot be
// initialized the volatile in-memory store is used instead and a warning is
// logged. BackendSQLite and BackendMemory force the respective variant, and a
// forced SQLite backend that fails to initialize is an error rather than a
// silent fallback.
func Open(ctx context.Context, backend, path string, log logging.Logger) (Store, Kind, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), KindMemory, nil
	case BackendSQLite:
		s, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, "", err
		}
		return s, KindSQLite, nil
	case BackendAuto:
		s, err := OpenSQLite(ctx, path)
		if err != nil {
			log.Warn(ctx, "durable store unavailable, falling back to in-memory store",
				"path", path, "error", err)
			return NewMemoryStore(), KindMemory, nil
		}
		return s, KindSQLite, nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", backend)
	}
}

// OpenSQLite opens the database at path and applies the embedded migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite [%s]: %w", path, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite [%s]: %w", path, err)
	}

	return NewSQLiteStore(db), nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
