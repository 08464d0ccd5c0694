package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "scheme added when missing", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https preserved", raw: "https://notes.example.com", want: "https://notes.example.com"},
		{name: "empty address", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_CreateNote(t *testing.T) {
	want := models.Note{ID: "note-1", Title: "Groceries", Content: "Milk, eggs"}

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/notes", r.URL.Path)

		var body models.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Groceries", body.Title)
		assert.Equal(t, "Milk, eggs", body.Content)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(want)
	}))

	got, err := a.CreateNote(context.Background(), "Groceries", "Milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHTTPServerAdapter_CreateNote_BadRequest(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "empty note title", http.StatusBadRequest)
	}))

	_, err := a.CreateNote(context.Background(), "   ", "content")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPServerAdapter_Lists(t *testing.T) {
	active := []models.Note{{ID: "a", Title: "one"}}
	trash := []models.Note{{ID: "b", Title: "two", Deleted: true}}

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/notes":
			json.NewEncoder(w).Encode(active)
		case "/api/notes/trash":
			json.NewEncoder(w).Encode(trash)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	gotActive, err := a.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, active, gotActive)

	gotTrash, err := a.ListTrash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trash, gotTrash)
}

func TestHTTPServerAdapter_SoftDeleteAndRestore(t *testing.T) {
	expiresAt := time.Date(2026, time.January, 15, 12, 0, 2, 0, time.UTC)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/notes/note-1":
		case r.Method == http.MethodPost && r.URL.Path == "/api/notes/note-1/restore":
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(undoExpiryResponse{UndoExpiresAt: expiresAt})
	}))

	got, err := a.SoftDelete(context.Background(), "note-1")
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(got))

	got, err = a.Restore(context.Background(), "note-1")
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(got))
}

func TestHTTPServerAdapter_SoftDelete_NotFound(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "note not found", http.StatusNotFound)
	}))

	_, err := a.SoftDelete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_Purge(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/notes/note-1/purge", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, a.Purge(context.Background(), "note-1"))
}

func TestHTTPServerAdapter_Undo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/notes/undo", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))

		assert.NoError(t, a.Undo(context.Background()))
	})

	t.Run("nothing to undo", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no undo available", http.StatusConflict)
		}))

		assert.ErrorIs(t, a.Undo(context.Background()), ErrConflict)
	})
}

func TestHTTPServerAdapter_PingAndVersion(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.2.3"))
	}))

	require.NoError(t, a.Ping(context.Background()))

	version, err := a.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestHTTPServerAdapter_StreamEvents(t *testing.T) {
	t.Run("decodes frames and closes on cancel", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/notes/events", r.URL.Path)

			w.Header().Set("Content-Type", "text/event-stream")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "event: soft_deleted\ndata: {\"id\":\"note-1\",\"deleted\":true}\n\n")
			w.(http.Flusher).Flush()

			<-r.Context().Done()
		}))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := a.StreamEvents(ctx)
		require.NoError(t, err)

		select {
		case event := <-events:
			assert.Equal(t, models.NoteSoftDeleted, event.Kind)
			assert.Equal(t, "note-1", event.Note.ID)
			assert.True(t, event.Note.Deleted)
		case <-time.After(time.Second):
			t.Fatal("no event received")
		}

		cancel()

		select {
		case _, ok := <-events:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("event channel not closed after cancel")
		}
	})

	t.Run("malformed frame is skipped", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "event: created\ndata: not-json\n\n")
			fmt.Fprint(w, "event: created\ndata: {\"id\":\"note-2\"}\n\n")
		}))

		events, err := a.StreamEvents(context.Background())
		require.NoError(t, err)

		select {
		case event := <-events:
			assert.Equal(t, models.NoteCreated, event.Kind)
			assert.Equal(t, "note-2", event.Note.ID)
		case <-time.After(time.Second):
			t.Fatal("no event received")
		}
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}))

		_, err := a.StreamEvents(context.Background())
		assert.Error(t, err)
	})
}
