package feed

import (
	"testing"
	"time"

	"eventRegistrar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(names ...string) []models.Event {
	events := make([]models.Event, 0, len(names))
	for _, name := range names {
		events = append(events, models.Event{EventName: name})
	}
	return events
}

func TestSubscribeReceivesPublishedSnapshot(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(snapshot("workshop"))

	select {
	case got := <-sub:
		require.Len(t, got, 1)
		assert.Equal(t, "workshop", got[0].EventName)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestSlowSubscriberGetsLatestSnapshot(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(snapshot("first"))
	hub.Publish(snapshot("second"))
	hub.Publish(snapshot("third"))

	got := <-sub
	require.Len(t, got, 1)
	assert.Equal(t, "third", got[0].EventName, "pending snapshot replaced by the newest")
}

func TestPublishReachesEverySubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	subA, cancelA := hub.Subscribe()
	defer cancelA()
	subB, cancelB := hub.Subscribe()
	defer cancelB()

	hub.Publish(snapshot("a", "b"))

	assert.Len(t, <-subA, 2)
	assert.Len(t, <-subB, 2)
}

func TestCancelStopsDelivery(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub, cancel := hub.Subscribe()

	require.Equal(t, 1, hub.Subscribers())

	cancel()
	assert.Equal(t, 0, hub.Subscribers())

	hub.Publish(snapshot("after cancel"))

	_, open := <-sub
	assert.False(t, open, "channel closed after cancel")

	// a second cancel must not panic
	cancel()
}
