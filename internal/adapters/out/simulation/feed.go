package simulation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freightdesk/internal/core/domain/model/kernel"
)

// AgentUpdate is one position change published on the feed.
type AgentUpdate struct {
	// AgentID identifies the moved agent.
	AgentID string
	// Location is the agent's new position.
	Location kernel.GeoPoint
	// At is when the movement was observed.
	At time.Time
}

// Listener receives agent updates. Listeners run on the publisher's
// goroutine; slow listeners slow the feed down.
type Listener func(update AgentUpdate)

// Feed is an in-process publish/subscribe bus for agent movement.
// Updates from one publisher reach every listener in publish order. A
// panicking listener is logged and skipped, never crashing the publisher
// or starving the remaining listeners.
type Feed struct {
	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// NewFeed creates an empty feed bus.
func NewFeed(logger *slog.Logger) *Feed {
	return &Feed{
		listeners: make(map[int]Listener),
		logger:    logger.With("component", "agent_feed"),
	}
}

// Subscribe registers a listener and returns a cancel function that
// removes it. Cancelling twice is harmless.
func (f *Feed) Subscribe(listener Listener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.listeners[id] = listener

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// Publish delivers the update to every current listener.
func (f *Feed) Publish(update AgentUpdate) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, listener := range f.listeners {
		f.deliver(listener, update)
	}
}

func (f *Feed) deliver(listener Listener, update AgentUpdate) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.ErrorContext(context.Background(),
				"Agent feed listener panicked", "agent_id", update.AgentID, "panic", r)
		}
	}()

	listener(update)
}

// ListenerCount reports how many listeners are currently subscribed.
func (f *Feed) ListenerCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.listeners)
}
