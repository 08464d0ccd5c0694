package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=services.go -destination=../mock/service_mock.go -package=mock

// NoteService is the note lifecycle manager. It mediates every mutation and
// read of the note collection and owns the single undo slot.
//
// All methods are safe for concurrent use. Mutations never block on
// subscribers; failures are reported through the returned error.
type NoteService interface {
	// Create validates title and content (both must be non-blank after
	// trimming), assigns an identifier and creation timestamp, and stores
	// the note as active. Creation never arms the undo slot.
	Create(ctx context.Context, title, content string) (models.Note, error)

	// Get returns a single note regardless of partition.
	Get(ctx context.Context, id string) (models.Note, error)

	// ListActive returns all notes outside the trash, newest first.
	ListActive(ctx context.Context) ([]models.Note, error)

	// ListDeleted returns all trashed notes, newest first.
	ListDeleted(ctx context.Context) ([]models.Note, error)

	// SoftDelete moves the note to the trash and arms the undo slot with
	// the inverse restore action. The returned slot tells the caller when
	// the undo opportunity expires.
	SoftDelete(ctx context.Context, id string) (models.UndoSlot, error)

	// Restore moves the note out of the trash and arms the undo slot with
	// the inverse soft-delete action.
	Restore(ctx context.Context, id string) (models.UndoSlot, error)

	// HardDelete removes the note permanently. If the live undo slot
	// references the note, the slot is invalidated.
	HardDelete(ctx context.Context, id string) error

	// Undo executes the inverse action held by the live undo slot and
	// clears it. Returns ErrNoUndoAvailable if no slot is live or its
	// deadline has passed. Undo never arms a new slot.
	Undo(ctx context.Context) error

	// Subscribe registers a listener for note lifecycle events.
	// The caller must Unsubscribe when done.
	Subscribe() chan models.NoteEvent

	// Unsubscribe removes a listener and closes its channel.
	Unsubscribe(ch chan models.NoteEvent)
}

// AppInfoService exposes build/application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}

// Services is the container handed to the transport layer.
type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires all services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		NoteService:    NewNoteService(storages.NoteRepository, cfg, logger),
		AppInfoService: NewAppInfoService(cfg),
	}
}
