package tui

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

type notesLoadedMsg struct {
	trash bool
	notes []models.Note
	err   error
}

type createDoneMsg struct {
	note models.Note
	err  error
}

// transitionDoneMsg reports a completed soft-delete or restore together with
// the undo deadline the server armed for it.
type transitionDoneMsg struct {
	trashed   bool
	expiresAt time.Time
	err       error
}

type purgeDoneMsg struct {
	err error
}

type undoDoneMsg struct {
	err error
}

// undoTickMsg drives the undo countdown repaint. The deadline itself lives
// on the server; the tick is display-only.
type undoTickMsg time.Time

// eventStreamMsg delivers the opened live event feed, or the failure to
// open it.
type eventStreamMsg struct {
	events <-chan models.NoteEvent
	err    error
}

// serverEventMsg is a single note mutation received over the live feed.
type serverEventMsg models.NoteEvent

// eventStreamClosedMsg reports that the server ended the live feed.
type eventStreamClosedMsg struct{}
