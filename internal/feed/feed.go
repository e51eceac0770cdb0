// Package feed fans full-collection snapshots out to subscribers. Every
// mutation anywhere in the store produces a complete replacement snapshot,
// delivered in publish order. A subscriber that has not drained the previous
// snapshot has it replaced by the newer one, so it only ever misses
// intermediate states, never the latest.
package feed

import (
	"sync"

	"eventRegistrar/internal/models"
)

type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan []models.Event
	nextID uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan []models.Event)}
}

// Subscribe registers a consumer. The returned cancel stops delivery, closes
// the channel and releases the subscription; it must be called when the
// consumer goes away and is safe to call more than once.
func (h *Hub) Subscribe() (<-chan []models.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan []models.Event, 1)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers snapshot to every live subscriber. Channels are buffered
// for one snapshot and only Publish sends on them, so replacing a stale
// pending snapshot and re-sending cannot block under the lock.
func (h *Hub) Publish(snapshot []models.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case <-sub:
		default:
		}
		sub <- snapshot
	}
}

// Subscribers reports the current number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}
