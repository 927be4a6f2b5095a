package shell

import "sync"

// EventType names a shell change pushed to open tabs.
type EventType string

const (
	EventSession  EventType = "session"
	EventLanguage EventType = "language"
	EventSOS      EventType = "sos"
	EventNavigate EventType = "navigate"
)

// Event is one shell change. Only the field matching Type is meaningful.
type Event struct {
	Type     EventType `json:"type"`
	SignedIn bool      `json:"signed_in,omitempty"`
	Language string    `json:"language,omitempty"`
	Active   bool      `json:"active,omitempty"`
	Location string    `json:"location,omitempty"`
}

const subscriberBuffer = 16

// Hub fans shell events out to subscribers. Unlike the rest of the shell it
// is safe for concurrent use: SOS resets publish from the timer goroutine.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[int]chan Event{}}
}

// Subscribe returns a buffered event channel and its cancel func. The channel
// is closed by cancel or by Close. Slow subscribers miss events rather than
// block publishers.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.nextID++
	id := h.nextID
	h.subs[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
}

// Publish delivers e to every subscriber without blocking.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribers reports the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
