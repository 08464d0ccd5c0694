// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// undoExpiryResponse tells the client until when the last soft-delete or
// restore can be undone.
type undoExpiryResponse struct {
	UndoExpiresAt time.Time `json:"undo_expires_at"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), body.Title, body.Content)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusCreated, note)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListActive(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	h.writeJSON(w, r, http.StatusOK, notes)
}

func (h *Handler) listTrash(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListDeleted(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listTrash").Msg("error listing trash")
		http.Error(w, "error listing trash", statusFromError(err))
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	h.writeJSON(w, r, http.StatusOK, notes)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := h.services.NoteService.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getNote").Msg("error getting note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, note)
}

func (h *Handler) softDeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slot, err := h.services.NoteService.SoftDelete(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.softDeleteNote").Msg("error soft-deleting note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, undoExpiryResponse{UndoExpiresAt: slot.ExpiresAt})
}

func (h *Handler) restoreNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slot, err := h.services.NoteService.Restore(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.restoreNote").Msg("error restoring note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, undoExpiryResponse{UndoExpiresAt: slot.ExpiresAt})
}

func (h *Handler) purgeNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.NoteService.HardDelete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.purgeNote").Msg("error purging note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) undoLastAction(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.Undo(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.undoLastAction").Msg("error undoing last action")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response")
	}
}
