/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Hub is a coarse-grained change broadcaster. Signals carry no payload: any
// change anywhere in a store triggers every subscriber, which re-fetches its
// own descriptor independently.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]chan struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]chan struct{}),
	}
}

// Subscribe registers a new subscriber and returns its signal channel plus a
// cancel function. The channel is buffered with capacity 1, so broadcasts that
// arrive while a signal is already pending coalesce into that one signal. The
// channel is closed when cancel is called.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	id := uuid.New()
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Broadcast signals every current subscriber that the store changed. The send
// is non-blocking: a subscriber with a signal already pending is skipped.
func (h *Hub) Broadcast() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
