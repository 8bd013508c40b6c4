package realtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/pkg/lifecycle"
)

// Size of each subscriber's event buffer. A subscriber that falls this
// far behind is dropped rather than allowed to block publishers.
const sendBuffer = 16

// System defines the public contract for the change feed.
type System interface {
	Handler() *Handler
	Start(lc *lifecycle.Coordinator) error
	Publish(e Event)
}

type subscriber struct {
	send   chan Event
	tables map[string]struct{}
	userID uuid.UUID
}

// wants reports whether the subscriber should receive the event:
// the table must be subscribed, and personal events must match the
// subscriber's user.
func (s *subscriber) wants(e Event) bool {
	if len(s.tables) > 0 {
		if _, ok := s.tables[e.Table]; !ok {
			return false
		}
	}
	if e.UserID != nil && *e.UserID != s.userID {
		return false
	}
	return true
}

// Hub fans committed change events out to websocket subscribers.
type Hub struct {
	logger      *slog.Logger
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	closed      bool
}

// New creates a Hub with no subscribers.
func New(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("system", "realtime"),
		subscribers: make(map[*subscriber]struct{}),
	}
}

func (h *Hub) Handler() *Handler {
	return NewHandler(h, h.logger)
}

// Start registers a shutdown hook that disconnects all subscribers.
func (h *Hub) Start(lc *lifecycle.Coordinator) error {
	h.logger.Info("starting realtime system")

	lc.OnShutdown(func() {
		h.close()
	})

	return nil
}

// Publish delivers the event to every matching subscriber. Subscribers
// whose buffers are full are dropped.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for sub := range h.subscribers {
		if !sub.wants(e) {
			continue
		}

		select {
		case sub.send <- e:
		default:
			delete(h.subscribers, sub)
			close(sub.send)
			h.logger.Warn("dropped slow realtime subscriber", "user_id", sub.userID)
		}
	}
}

// subscribe registers a subscriber for the given tables. An empty table
// set subscribes to every table.
func (h *Hub) subscribe(tables []string, userID uuid.UUID) *subscriber {
	sub := &subscriber{
		send:   make(chan Event, sendBuffer),
		tables: make(map[string]struct{}, len(tables)),
		userID: userID,
	}
	for _, t := range tables {
		sub.tables[t] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.send)
		return sub
	}

	h.subscribers[sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.send)
	}
}

func (h *Hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.send)
	}

	h.logger.Info("realtime system stopped")
}
