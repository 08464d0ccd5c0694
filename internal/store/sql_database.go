package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DB wraps the raw database handle together with everything the repositories
// need to stay driver-agnostic: a squirrel builder configured with the
// driver's placeholder format, the goose dialect name, and an error
// classifier for driver-specific failure codes.
type DB struct {
	*sql.DB

	builder    sq.StatementBuilderType
	dialect    string
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Dialect returns the goose dialect name matching the underlying driver
// ("sqlite3" or "postgres").
func (db *DB) Dialect() string {
	return db.dialect
}

// ErrorClassifier translates driver-specific errors into the store's
// sentinel errors. Errors it does not recognise are returned unchanged.
type ErrorClassifier interface {
	Classify(err error) error
}

// passthroughClassifier is used for drivers without special error codes.
type passthroughClassifier struct{}

func (passthroughClassifier) Classify(err error) error { return err }
