// Package storage defines the contract the registration controllers persist
// through, plus the sentinel errors implementations report.
package storage

import (
	"context"
	"errors"
	"time"

	"eventRegistrar/internal/models"
)

var (
	// ErrEventNotFound is returned when the requested event id does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrSnapshotConflict is returned by UpdateParticipants when the stored
	// record changed after the caller read it.
	ErrSnapshotConflict = errors.New("event changed since last read")
)

type EventStore interface {
	CreateEvent(ctx context.Context, name string, date time.Time, slots int, observations string) (string, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)

	// UpdateParticipants replaces the event's participant list with next, but
	// only if the stored document still equals observed, the raw participants
	// bytes a previous GetEvent returned. This is the guard against two
	// clients passing the same capacity check off a stale read. Comparing the
	// stored bytes rather than a re-encoding keeps the guard working for
	// legacy records whose entries omit optional keys.
	UpdateParticipants(ctx context.Context, id string, observed []byte, next []models.Participant) error

	DeleteEvent(ctx context.Context, id string) error
}
