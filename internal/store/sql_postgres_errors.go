package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresErrorClassifier maps PostgreSQL error codes onto the store's
// sentinel errors so callers never have to inspect driver types.
type postgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns an [ErrorClassifier] for pgx errors.
func NewPostgresErrorClassifier() ErrorClassifier {
	return postgresErrorClassifier{}
}

func (postgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicateNote, err)
	default:
		return err
	}
}
