package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// streamEvents pushes note lifecycle events to the client as Server-Sent
// Events. Clients reload the affected list partition on each event instead
// of polling. The stream lives until the client disconnects.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Str("func", "*Handler.streamEvents").Msg("response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := h.services.NoteService.Subscribe()
	defer h.services.NoteService.Unsubscribe(events)

	log.Debug().Str("func", "*Handler.streamEvents").Msg("event stream opened")

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("func", "*Handler.streamEvents").Msg("event stream closed")
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			data, err := json.Marshal(event.Note)
			if err != nil {
				log.Err(err).Str("func", "*Handler.streamEvents").Msg("error encoding event")
				continue
			}

			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, data)
			flusher.Flush()
		}
	}
}
