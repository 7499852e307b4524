// Package sessionsync relays auth-state changes between the open tabs of one
// user and reconciles each tab's cached session against them.
//
// Delivery is best effort. A subscriber whose buffer is full misses the
// event, and nothing retries it; the next focus refresh is what bounds how
// long a tab can stay stale. Tabs are not guaranteed to converge.
package sessionsync

import (
	"sync"
	"sync/atomic"
)

// StorageEvent mirrors a browser storage event: one key changed from
// OldValue to NewValue. An empty NewValue means the key was removed.
type StorageEvent struct {
	Key      string `json:"key"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// Hub fans storage events out between the subscriptions of one user. Events
// never cross from one user's tabs to another's.
type Hub struct {
	mu      sync.RWMutex
	users   map[string]map[*Subscription]struct{}
	buffer  int
	dropped atomic.Uint64
}

// Subscription is one tab's view of the hub.
type Subscription struct {
	ch     chan StorageEvent
	hub    *Hub
	userID string
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{users: make(map[string]map[*Subscription]struct{}), buffer: buffer}
}

// Subscribe attaches a tab of userID.
func (h *Hub) Subscribe(userID string) *Subscription {
	s := &Subscription{ch: make(chan StorageEvent, h.buffer), hub: h, userID: userID}
	h.mu.Lock()
	set, ok := h.users[userID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.users[userID] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// UserID is the owner the subscription was opened for.
func (s *Subscription) UserID() string { return s.userID }

// Events is closed when the subscription is.
func (s *Subscription) Events() <-chan StorageEvent { return s.ch }

// Close detaches the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if set, ok := h.users[s.userID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(h.users, s.userID)
		}
	}
	close(s.ch)
}

// Publish delivers ev to the other subscriptions of from's user without
// blocking, and returns how many received it.
func (h *Hub) Publish(from *Subscription, ev StorageEvent) int {
	if from == nil {
		return 0
	}
	return h.send(from.userID, from, ev)
}

// PublishTo delivers ev to every subscription of userID, e.g. a server-side
// sign-out.
func (h *Hub) PublishTo(userID string, ev StorageEvent) int {
	return h.send(userID, nil, ev)
}

func (h *Hub) send(userID string, skip *Subscription, ev StorageEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.users[userID] {
		if s == skip {
			continue
		}
		select {
		case s.ch <- ev:
			delivered++
		default:
			h.dropped.Add(1)
		}
	}
	return delivered
}

// Len is the number of live subscriptions across all users.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.users {
		n += len(set)
	}
	return n
}

// Dropped counts events lost to full subscriber buffers.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }
