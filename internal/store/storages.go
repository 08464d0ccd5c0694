package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages is the container of all repositories the service layer consumes.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN and wires the
// note repository on top of it. A DSN starting with "postgres://" or
// "postgresql://" selects PostgreSQL; anything else is treated as a SQLite
// file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// DB exposes the underlying connection handle, used at startup to run
// migrations and at shutdown to close the pool.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
