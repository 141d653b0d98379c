package sse

import (
	"sync"
)

// Event is one server-sent event addressed to a user.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Hub fans events out to per-user subscriber channels. Publishing is
// non-blocking: a subscriber that cannot keep up drops events rather
// than stalling the publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a user and returns the event
// channel plus its cleanup function.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of one user.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[userID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// PublishToMany sends an event to multiple users.
func (h *Hub) PublishToMany(userIDs []string, event Event) {
	for _, userID := range userIDs {
		eventCopy := event
		eventCopy.UserID = userID
		h.Publish(userID, eventCopy)
	}
}

// SubscriberCount returns the number of active subscribers for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
