// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the note server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Ping checks that the server is reachable. Used at client startup.
	Ping(ctx context.Context) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)

	// CreateNote submits a new note and returns the stored record.
	// Returns [ErrBadRequest] (wrapped) when the server rejects the input.
	CreateNote(ctx context.Context, title, content string) (models.Note, error)

	// ListActive fetches all notes outside the trash, newest first.
	ListActive(ctx context.Context) ([]models.Note, error)

	// ListTrash fetches all soft-deleted notes, newest first.
	ListTrash(ctx context.Context) ([]models.Note, error)

	// SoftDelete moves the note into the trash and returns the instant until
	// which the action can be undone. Returns [ErrNotFound] (wrapped) when
	// the note does not exist.
	SoftDelete(ctx context.Context, id string) (time.Time, error)

	// Restore moves the note out of the trash and returns the instant until
	// which the action can be undone. Returns [ErrNotFound] (wrapped) when
	// the note does not exist.
	Restore(ctx context.Context, id string) (time.Time, error)

	// Purge permanently removes the note. Returns [ErrNotFound] (wrapped)
	// when the note does not exist.
	Purge(ctx context.Context, id string) error

	// Undo reverts the most recent soft-delete or restore. Returns
	// [ErrConflict] (wrapped) when no undoable action is live.
	Undo(ctx context.Context) error

	// StreamEvents opens the server's live event feed. The returned channel
	// carries one value per note mutation and is closed when ctx is
	// cancelled or the server ends the stream.
	StreamEvents(ctx context.Context) (<-chan models.NoteEvent, error)
}
