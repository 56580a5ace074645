package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pnicewicz421/big-picture/internal/events"
)

// EventsHandler streams room lifecycle events to one player over SSE. The
// stream is a convenience on top of polling GET /rooms/{roomID}; the server
// makes no delivery guarantee.
func (hr *HandlerRepo) EventsHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "room")
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		http.Error(w, "player_id query parameter is required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set http headers required for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	broadcaster := hr.gr.GetRoomByID(roomID)
	if broadcaster == nil {
		http.Error(w, "room not found or not active", http.StatusNotFound)
		return
	}

	listen := make(chan events.SseEvent, 16)
	broadcaster.Subscribe(playerID, listen)

	defer hr.logger.Info("SSE connection closed", "player_id", playerID, "room_id", roomID)
	defer broadcaster.Unsubscribe(playerID)

	hr.logger.Info("SSE connection established", "player_id", playerID, "room_id", roomID)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			hr.logger.Info("SSE client disconnected", "player_id", playerID, "room_id", roomID)
			return
		case event, ok := <-listen:
			if !ok {
				return
			}

			data, err := json.Marshal(event.Data)
			if err != nil {
				hr.logger.Error("failed to marshal SSE event", "error", err, "player_id", playerID)
				return
			}

			if event.EventType != "" {
				fmt.Fprintf(w, "event: %s\n", event.EventType)
			}
			fmt.Fprintf(w, "data: %s\n\n", string(data))
			flusher.Flush()

			if event.EventType == events.ROOM_CLOSED {
				return
			}
		}
	}
}
