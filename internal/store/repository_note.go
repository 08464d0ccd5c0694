// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection; queries are assembled with the squirrel builder
// carried by the connection, so the same code serves SQLite and PostgreSQL.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with
// structured fields.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert stores a fresh note row.
func (n *noteRepository) Insert(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Insert").
			Str("note_id", note.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.DB.ExecContext(ctx, query, args...); err != nil {
		if classified := n.classifier.Classify(err); errors.Is(classified, ErrDuplicateNote) {
			return classified
		}
		log.Err(err).
			Str("func", "noteRepository.Insert").
			Str("note_id", note.ID).
			Msg("failed to execute insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetByID returns a single note row or [ErrNoteNotFound].
func (n *noteRepository) GetByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(n.builder, id)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetByID").
			Str("note_id", id).
			Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetByID").
			Str("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListByFlag returns one partition of the notes table, newest first.
func (n *noteRepository) ListByFlag(ctx context.Context, deleted bool) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByFlagQuery(n.builder, deleted)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByFlag").
			Bool("deleted", deleted).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByFlag").
			Bool("deleted", deleted).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.Deleted)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListByFlag").
				Bool("deleted", deleted).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListByFlag").
			Bool("deleted", deleted).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// SetDeleted flips the deleted flag of one row. The UPDATE is unconditional
// with respect to the current flag value, so repeating a transition the row
// has already made is a silent success; only a missing row is an error.
func (n *noteRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetDeletedQuery(n.builder, id, deleted)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SetDeleted").
			Str("note_id", id).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SetDeleted").
			Str("note_id", id).
			Bool("deleted", deleted).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// Delete removes one row permanently.
func (n *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, id)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", id).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
