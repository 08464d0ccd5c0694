package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the low-level persistence contract for the notes table.
//
// Every mutation touches exactly one row, so the database's own row-level
// atomicity is the only write guarantee the lifecycle service relies on.
type NoteRepository interface {
	// Insert stores a fresh note. The caller assigns ID and CreatedAt.
	Insert(ctx context.Context, note models.Note) error

	// GetByID returns the note with the given id, or [ErrNoteNotFound].
	GetByID(ctx context.Context, id string) (models.Note, error)

	// ListByFlag returns every note whose deleted flag equals deleted,
	// ordered by created_at descending (newest first).
	ListByFlag(ctx context.Context, deleted bool) ([]models.Note, error)

	// SetDeleted unconditionally writes the deleted flag of the note with
	// the given id. Writing the value the row already holds is a no-op
	// success. Returns [ErrNoteNotFound] if no row matches id.
	SetDeleted(ctx context.Context, id string, deleted bool) error

	// Delete permanently removes the note with the given id.
	// Returns [ErrNoteNotFound] if no row matches id.
	Delete(ctx context.Context, id string) error
}
