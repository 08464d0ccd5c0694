package store

import "errors"

// Sentinel errors returned by the storage layer. Higher layers match them
// with errors.Is to translate storage failures into API responses.
var (
	// ErrNoteNotFound is returned when an operation references a note id
	// that is not present in the notes table.
	ErrNoteNotFound = errors.New("note not found")

	// ErrDuplicateNote is returned when an insert collides with an
	// existing note id.
	ErrDuplicateNote = errors.New("note already exists")

	ErrBuildingSQLQuery   = errors.New("error building SQL query")
	ErrExecutingQuery     = errors.New("error executing query")
	ErrExecutingStatement = errors.New("error executing statement")
	ErrScanningRow        = errors.New("error scanning row")
	ErrScanningRows       = errors.New("error scanning rows")
)
