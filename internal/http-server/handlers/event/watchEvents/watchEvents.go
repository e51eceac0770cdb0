// Package watchEvents streams the live event collection over server-sent
// events. Each message is a full replacement snapshot, never a delta, so a
// client can always render straight from the last message it received.
package watchEvents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"eventRegistrar/internal/lib/api/response"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsWatcher
type EventsWatcher interface {
	Snapshot(ctx context.Context) ([]models.Event, error)
	Watch() (<-chan []models.Event, func())
}

func New(log *slog.Logger, watcher EventsWatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.watchEvents.New"

		log = log.With(slog.String("op", op))

		flusher, ok := w.(http.Flusher)
		if !ok {
			log.Error("response writer does not support streaming")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("streaming unsupported"))
			return
		}

		snapshot, err := watcher.Snapshot(r.Context())
		if err != nil {
			log.Error("failed to get initial snapshot", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		// subscribe before writing the initial snapshot so no change between
		// the read and the subscription is lost
		sub, cancel := watcher.Watch()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if err = writeSnapshot(w, flusher, snapshot); err != nil {
			log.Error("failed to write snapshot", sl.Err(err))
			return
		}

		log.Info("watch stream opened")

		for {
			select {
			case <-r.Context().Done():
				log.Info("watch stream closed by client")
				return
			case snapshot, open := <-sub:
				if !open {
					log.Info("watch stream closed by hub")
					return
				}
				if err = writeSnapshot(w, flusher, snapshot); err != nil {
					log.Error("failed to write snapshot", sl.Err(err))
					return
				}
			}
		}
	}
}

func writeSnapshot(w http.ResponseWriter, flusher http.Flusher, events []models.Event) error {
	body, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err = fmt.Fprintf(w, "data: %s\n\n", body); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	flusher.Flush()

	return nil
}
