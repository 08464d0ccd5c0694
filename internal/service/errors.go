package service

import "errors"

var (
	// ErrEmptyTitle is returned by Create when the title is blank after
	// trimming whitespace.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent is returned by Create when the content is blank
	// after trimming whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyNoteID is returned when an operation receives a blank id.
	ErrEmptyNoteID = errors.New("note id cannot be empty")

	// ErrNoUndoAvailable is returned by Undo when no slot is live or the
	// slot's deadline has already passed.
	ErrNoUndoAvailable = errors.New("no undo available")
)
