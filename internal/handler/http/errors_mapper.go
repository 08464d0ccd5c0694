package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyTitle:   http.StatusBadRequest,
	service.ErrEmptyContent: http.StatusBadRequest,
	service.ErrEmptyNoteID:  http.StatusBadRequest,

	service.ErrNoUndoAvailable: http.StatusConflict,

	store.ErrNoteNotFound:  http.StatusNotFound,
	store.ErrDuplicateNote: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
