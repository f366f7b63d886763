// Package bus provides a synchronous in-process event bus used to observe
// interactive sessions (selections, warnings, deliveries).
package bus

import (
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Event types emitted by a session.
const (
	EventSessionStarted    = "session.started"
	EventSelectionRejected = "selection.rejected"
	EventDurationDefaulted = "duration.defaulted"
	EventMessageSent       = "message.sent"
)

// Event is a single notification. Payload keys are event-specific.
type Event struct {
	Type      string
	SessionID string
	Payload   map[string]any
	Timestamp time.Time
}

// EventHandler is a callback for events.
type EventHandler func(Event)

type namedHandler struct {
	id      string
	handler EventHandler
}

// EventBus dispatches events to handlers in registration order and keeps a
// bounded history for replay.
type EventBus struct {
	mu         sync.RWMutex
	handlers   map[string][]namedHandler
	seq        int
	history    []Event
	maxHistory int
	logger     *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		handlers:   make(map[string][]namedHandler),
		maxHistory: 256,
		logger:     logger,
	}
}

// On registers handler for eventType ("*" matches every type) and returns an ID for Off.
func (eb *EventBus) On(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.seq++
	id := eventType + "-" + strconv.Itoa(eb.seq)
	eb.handlers[eventType] = append(eb.handlers[eventType], namedHandler{id: id, handler: handler})
	return id
}

func (eb *EventBus) Off(eventType, handlerID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	hs := eb.handlers[eventType]
	for i, h := range hs {
		if h.id == handlerID {
			eb.handlers[eventType] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Emit records the event and calls matching handlers synchronously.
// A panicking handler is logged and does not stop the others.
func (eb *EventBus) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	eb.mu.Lock()
	if len(eb.history) >= eb.maxHistory {
		eb.history = eb.history[1:]
	}
	eb.history = append(eb.history, event)
	targets := make([]namedHandler, 0, len(eb.handlers[event.Type])+len(eb.handlers["*"]))
	targets = append(targets, eb.handlers[event.Type]...)
	if event.Type != "*" {
		targets = append(targets, eb.handlers["*"]...)
	}
	eb.mu.Unlock()

	for _, h := range targets {
		eb.call(h, event)
	}
}

func (eb *EventBus) call(h namedHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("event handler panic", "event", event.Type, "handler", h.id, "panic", r)
		}
	}()
	h.handler(event)
}

// Replay returns recorded events of eventType ("*" for all) at or after since.
func (eb *EventBus) Replay(eventType string, since time.Time) []Event {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	var result []Event
	for _, e := range eb.history {
		if e.Timestamp.Before(since) {
			continue
		}
		if eventType == "*" || e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}

func (eb *EventBus) HistoryLen() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.history)
}
