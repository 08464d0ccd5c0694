package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client
	stream *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	// the event feed is long-lived, so it cannot share the per-request
	// timeout of the regular client
	stream := resty.New().SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, stream: stream, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Ping implements [ServerAdapter]. It GETs the version endpoint and discards
// the payload; any 2xx response counts as reachable.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter]. It GETs /api/version and returns
// the plain-text body.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// CreateNote implements [ServerAdapter]. It POSTs the note fields to
// POST /api/notes and decodes the created record from the response.
func (h *httpServerAdapter) CreateNote(ctx context.Context, title, content string) (models.Note, error) {
	var created models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateNoteRequest{Title: title, Content: content}).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// ListActive implements [ServerAdapter]. It GETs /api/notes and decodes the
// active partition.
func (h *httpServerAdapter) ListActive(ctx context.Context) ([]models.Note, error) {
	return h.listNotes(ctx, "/api/notes")
}

// ListTrash implements [ServerAdapter]. It GETs /api/notes/trash and decodes
// the trash partition.
func (h *httpServerAdapter) ListTrash(ctx context.Context) ([]models.Note, error) {
	return h.listNotes(ctx, "/api/notes/trash")
}

func (h *httpServerAdapter) listNotes(ctx context.Context, path string) ([]models.Note, error) {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return notes, nil
}

// undoExpiryResponse mirrors the server payload for soft-delete and restore.
type undoExpiryResponse struct {
	UndoExpiresAt time.Time `json:"undo_expires_at"`
}

// SoftDelete implements [ServerAdapter]. It sends DELETE /api/notes/{id} and
// returns the undo expiry reported by the server.
func (h *httpServerAdapter) SoftDelete(ctx context.Context, id string) (time.Time, error) {
	return h.transitionNote(ctx, resty.MethodDelete, "/api/notes/"+url.PathEscape(id))
}

// Restore implements [ServerAdapter]. It sends POST /api/notes/{id}/restore
// and returns the undo expiry reported by the server.
func (h *httpServerAdapter) Restore(ctx context.Context, id string) (time.Time, error) {
	return h.transitionNote(ctx, resty.MethodPost, "/api/notes/"+url.PathEscape(id)+"/restore")
}

func (h *httpServerAdapter) transitionNote(ctx context.Context, method, path string) (time.Time, error) {
	resp, err := h.client.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return time.Time{}, fmt.Errorf("transition request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	var expiry undoExpiryResponse
	if err = json.Unmarshal(resp.Body(), &expiry); err != nil {
		return time.Time{}, fmt.Errorf("decode transition response: %w", err)
	}

	return expiry.UndoExpiresAt, nil
}

// Purge implements [ServerAdapter]. It sends DELETE /api/notes/{id}/purge.
func (h *httpServerAdapter) Purge(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/notes/" + url.PathEscape(id) + "/purge")
	if err != nil {
		return fmt.Errorf("purge request: %w", err)
	}

	return mapHTTPError(resp)
}

// Undo implements [ServerAdapter]. It sends POST /api/notes/undo. A 409
// response maps to [ErrConflict], meaning no undoable action is live.
func (h *httpServerAdapter) Undo(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/notes/undo")
	if err != nil {
		return fmt.Errorf("undo request: %w", err)
	}

	return mapHTTPError(resp)
}

// StreamEvents implements [ServerAdapter]. It opens GET /api/notes/events as
// a server-sent-event stream and decodes every frame into a
// [models.NoteEvent].
func (h *httpServerAdapter) StreamEvents(ctx context.Context) (<-chan models.NoteEvent, error) {
	resp, err := h.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/api/notes/events")
	if err != nil {
		return nil, fmt.Errorf("event stream request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		_ = body.Close()
		return nil, fmt.Errorf("event stream: unexpected status %d", resp.StatusCode())
	}

	events := make(chan models.NoteEvent, 8)
	done := make(chan struct{})

	go func() {
		defer close(events)
		defer close(done)
		h.readEventFrames(ctx, body, events)
	}()

	// the reader blocks on the socket; closing the body is what unblocks it
	// on cancellation
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = body.Close()
	}()

	return events, nil
}

// readEventFrames parses `event:`/`data:` line pairs; a blank line ends a
// frame.
func (h *httpServerAdapter) readEventFrames(ctx context.Context, body io.Reader, events chan<- models.NoteEvent) {
	scanner := bufio.NewScanner(body)

	var kind, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			kind = strings.TrimPrefix(line, "event: ")

		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")

		case line == "":
			if kind == "" && data == "" {
				continue
			}

			var note models.Note
			if err := json.Unmarshal([]byte(data), &note); err != nil {
				h.logger.Warn().Err(err).Str("kind", kind).Msg("skipping malformed event frame")
				kind, data = "", ""
				continue
			}

			select {
			case events <- models.NoteEvent{Kind: models.NoteEventKind(kind), Note: note}:
			case <-ctx.Done():
				return
			}
			kind, data = "", ""
		}
	}
}
