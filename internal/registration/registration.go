// Package registration orchestrates the event lifecycle: creating events,
// admitting and removing participants, deleting events, and fanning the
// resulting collection snapshots out to feed subscribers. The store is the
// single source of truth; nothing here keeps an authoritative local copy.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventRegistrar/internal/feed"
	"eventRegistrar/internal/ledger"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/metrics"
	"eventRegistrar/internal/models"
	"eventRegistrar/internal/storage"
)

var (
	ErrEmptyEventName = errors.New("event name is required")
	ErrInvalidSlots   = errors.New("slots must be a positive integer")

	// ErrConfirmationMismatch is returned when the re-entered event id of a
	// destructive operation does not match the target.
	ErrConfirmationMismatch = errors.New("confirmation id does not match event id")
)

// conflictRetries bounds how often a guarded write is re-evaluated against a
// fresher snapshot before the conflict is surfaced.
const conflictRetries = 3

// Creator handles event creation. Kept separate from Registrar: organizer
// input never touches the seat ledger.
type Creator struct {
	log     *slog.Logger
	store   storage.EventStore
	feed    *feed.Hub
	metrics *metrics.Metrics
}

func NewCreator(log *slog.Logger, store storage.EventStore, hub *feed.Hub, m *metrics.Metrics) *Creator {
	return &Creator{log: log, store: store, feed: hub, metrics: m}
}

func (c *Creator) CreateEvent(ctx context.Context, name string, date time.Time, slots int, observations string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyEventName
	}
	if slots <= 0 {
		return "", ErrInvalidSlots
	}

	id, err := c.store.CreateEvent(ctx, name, date, slots, observations)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}

	c.metrics.IncrementEventsCreated()
	publish(ctx, c.log, c.store, c.feed)

	return id, nil
}

// Registrar applies ledger decisions to the store. Adds and removes are
// compare-and-swap writes keyed on the participants field: when the record
// changed underneath us the decision is re-evaluated against the latest
// state instead of overshooting capacity off a stale read.
type Registrar struct {
	log     *slog.Logger
	store   storage.EventStore
	feed    *feed.Hub
	metrics *metrics.Metrics
}

func NewRegistrar(log *slog.Logger, store storage.EventStore, hub *feed.Hub, m *metrics.Metrics) *Registrar {
	return &Registrar{log: log, store: store, feed: hub, metrics: m}
}

// AddParticipant admits draft into the event. One store write per accepted
// call, zero writes on any rejection.
func (r *Registrar) AddParticipant(ctx context.Context, eventID string, draft models.Participant) error {
	for attempt := 0; ; attempt++ {
		event, err := r.store.GetEvent(ctx, eventID)
		if err != nil {
			r.metrics.ObserveRegistration(outcomeLabel(err))
			return err
		}

		next, err := ledger.Evaluate(event.Participants, event.Slots, draft)
		if err != nil {
			r.metrics.ObserveRegistration(outcomeLabel(err))
			return err
		}

		err = r.store.UpdateParticipants(ctx, eventID, event.ParticipantsRaw, next)
		if errors.Is(err, storage.ErrSnapshotConflict) && attempt < conflictRetries {
			r.log.Debug("participants changed underneath, re-evaluating",
				slog.String("event_id", eventID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			r.metrics.ObserveRegistration(outcomeLabel(err))
			return err
		}

		r.metrics.ObserveRegistration("accepted")
		publish(ctx, r.log, r.store, r.feed)
		return nil
	}
}

// RemoveParticipant drops the participant carrying rawCPF. The caller must
// re-enter the event id as confirmation; a mismatch refuses the operation
// before any read or write. Removing an absent CPF is a no-op.
func (r *Registrar) RemoveParticipant(ctx context.Context, eventID, rawCPF, confirmationID string) error {
	if confirmationID != eventID {
		return ErrConfirmationMismatch
	}

	for attempt := 0; ; attempt++ {
		event, err := r.store.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}

		next, removed := ledger.Remove(event.Participants, rawCPF)
		if !removed {
			return nil
		}

		err = r.store.UpdateParticipants(ctx, eventID, event.ParticipantsRaw, next)
		if errors.Is(err, storage.ErrSnapshotConflict) && attempt < conflictRetries {
			continue
		}
		if err != nil {
			return err
		}

		publish(ctx, r.log, r.store, r.feed)
		return nil
	}
}

// DeleteEvent removes the whole record. Terminal: the event and all its
// participants cease to exist. Requires the same confirmation as removal.
func (r *Registrar) DeleteEvent(ctx context.Context, eventID, confirmationID string) error {
	if confirmationID != eventID {
		return ErrConfirmationMismatch
	}

	if err := r.store.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	r.metrics.IncrementEventsDeleted()
	publish(ctx, r.log, r.store, r.feed)
	return nil
}

// Snapshot returns the full ordered collection of events.
func (r *Registrar) Snapshot(ctx context.Context) ([]models.Event, error) {
	return r.store.GetAllEvents(ctx)
}

// Watch subscribes to replacement snapshots of the whole collection. The
// cancel func releases the subscription and must be called on teardown.
func (r *Registrar) Watch() (<-chan []models.Event, func()) {
	return r.feed.Subscribe()
}

// publish pushes the latest full snapshot to subscribers. A failed read here
// only costs subscribers one notification; the mutation already landed.
func publish(ctx context.Context, log *slog.Logger, store storage.EventStore, hub *feed.Hub) {
	events, err := store.GetAllEvents(ctx)
	if err != nil {
		log.Warn("failed to load snapshot for subscribers", sl.Err(err))
		return
	}
	hub.Publish(events)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ledger.ErrNoSlotsAvailable):
		return "no_slots_available"
	case errors.Is(err, ledger.ErrDuplicateRegistration):
		return "duplicate_registration"
	case errors.Is(err, ledger.ErrInvalidIdentifier):
		return "invalid_identifier"
	case errors.Is(err, ledger.ErrMissingIdentifier):
		return "missing_identifier"
	case errors.Is(err, storage.ErrEventNotFound):
		return "event_not_found"
	default:
		return "store_failure"
	}
}
