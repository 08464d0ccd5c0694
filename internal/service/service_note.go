// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService implements [NoteService] on top of a [store.NoteRepository].
//
// Per-note state machine: ACTIVE ⇄ DELETED → removed. Create is the only
// entry to ACTIVE, hard-delete is terminal from either state, and operations
// on a removed id surface store.ErrNoteNotFound.
//
// The undo slot is a single mutex-guarded cell. Arming and clearing it is an
// atomic replace with last-writer-wins semantics: a fresh soft-delete or
// restore silently discards whatever slot was live before, without executing
// it. Expiry is evaluated lazily inside Undo, so a UI-side timer that fires
// late (or never) cannot extend the window.
type noteService struct {
	notes  store.NoteRepository
	events *EventBroker

	undoWindow time.Duration
	now        func() time.Time

	mu   sync.Mutex
	slot *models.UndoSlot

	logger *logger.Logger
}

// NewNoteService constructs the lifecycle service with the undo window taken
// from cfg and the wall clock as time source.
func NewNoteService(notes store.NoteRepository, cfg config.App, logger *logger.Logger) NoteService {
	return newNoteService(notes, cfg.UndoWindow, time.Now, logger)
}

// newNoteService is the constructor used by tests to inject a fake clock.
func newNoteService(notes store.NoteRepository, undoWindow time.Duration, now func() time.Time, logger *logger.Logger) *noteService {
	return &noteService{
		notes:      notes,
		events:     NewEventBroker(),
		undoWindow: undoWindow,
		now:        now,
		logger:     logger,
	}
}

// Create implements [NoteService].
func (s *noteService) Create(ctx context.Context, title, content string) (models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Note{}, ErrEmptyTitle
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Note{}, ErrEmptyContent
	}

	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
		Deleted:   false,
	}

	if err := s.notes.Insert(ctx, note); err != nil {
		return models.Note{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("note_id", note.ID).
		Msg("note created")

	s.events.Publish(models.NoteEvent{Kind: models.NoteCreated, Note: note})

	return note, nil
}

// Get implements [NoteService].
func (s *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	if id == "" {
		return models.Note{}, ErrEmptyNoteID
	}

	return s.notes.GetByID(ctx, id)
}

// ListActive implements [NoteService].
func (s *noteService) ListActive(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListByFlag(ctx, false)
}

// ListDeleted implements [NoteService].
func (s *noteService) ListDeleted(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListByFlag(ctx, true)
}

// SoftDelete implements [NoteService].
func (s *noteService) SoftDelete(ctx context.Context, id string) (models.UndoSlot, error) {
	if err := s.transition(ctx, id, true); err != nil {
		return models.UndoSlot{}, err
	}

	return s.armUndo(id, models.InverseRestore), nil
}

// Restore implements [NoteService].
func (s *noteService) Restore(ctx context.Context, id string) (models.UndoSlot, error) {
	if err := s.transition(ctx, id, false); err != nil {
		return models.UndoSlot{}, err
	}

	return s.armUndo(id, models.InverseSoftDelete), nil
}

// HardDelete implements [NoteService].
func (s *noteService) HardDelete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyNoteID
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return err
	}

	// Once the note is gone its undo slot must not fire.
	s.mu.Lock()
	if s.slot != nil && s.slot.NoteID == id {
		s.slot = nil
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("note_id", id).
		Msg("note permanently deleted")

	s.events.Publish(models.NoteEvent{
		Kind: models.NoteHardDeleted,
		Note: models.Note{ID: id},
	})

	return nil
}

// Undo implements [NoteService].
func (s *noteService) Undo(ctx context.Context) error {
	s.mu.Lock()
	slot := s.slot
	if slot == nil || s.now().After(slot.ExpiresAt) {
		// expired slots are dropped on first touch
		s.slot = nil
		s.mu.Unlock()
		return ErrNoUndoAvailable
	}
	s.slot = nil
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("note_id", slot.NoteID).
		Str("inverse", string(slot.Inverse)).
		Msg("executing undo")

	// The inverse transition does not re-arm the slot: undo of an undo
	// is not offered.
	return s.transition(ctx, slot.NoteID, slot.Inverse == models.InverseSoftDelete)
}

// Subscribe implements [NoteService].
func (s *noteService) Subscribe() chan models.NoteEvent {
	return s.events.Subscribe()
}

// Unsubscribe implements [NoteService].
func (s *noteService) Unsubscribe(ch chan models.NoteEvent) {
	s.events.Unsubscribe(ch)
}

// transition writes the deleted flag and publishes the matching event.
// Writing a flag value the note already holds is a no-op success.
func (s *noteService) transition(ctx context.Context, id string, deleted bool) error {
	if id == "" {
		return ErrEmptyNoteID
	}

	if err := s.notes.SetDeleted(ctx, id, deleted); err != nil {
		return err
	}

	kind := models.NoteRestored
	if deleted {
		kind = models.NoteSoftDeleted
	}

	logger.FromContext(ctx).Debug().
		Str("note_id", id).
		Bool("deleted", deleted).
		Msg("note transitioned")

	s.events.Publish(models.NoteEvent{
		Kind: kind,
		Note: models.Note{ID: id, Deleted: deleted},
	})

	return nil
}

// armUndo replaces the live undo slot. The previous slot, if any, is
// discarded without being executed.
func (s *noteService) armUndo(id string, inverse models.InverseAction) models.UndoSlot {
	slot := models.UndoSlot{
		NoteID:    id,
		Inverse:   inverse,
		ExpiresAt: s.now().Add(s.undoWindow),
	}

	s.mu.Lock()
	s.slot = &slot
	s.mu.Unlock()

	return slot
}
