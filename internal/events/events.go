package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	EventUserCreated        = "user_created"
	EventPropertyCreated    = "property_created"
	EventReservationCreated = "reservation_created"
)

// UserEventPayload never carries the password.
type UserEventPayload struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type PropertyEventPayload struct {
	PropertyID   int64  `json:"property_id"`
	OwnerID      int64  `json:"owner_id"`
	Title        string `json:"title"`
	City         string `json:"city"`
	CostPerNight int64  `json:"cost_per_night"`
}

type ReservationEventPayload struct {
	ReservationID int64     `json:"reservation_id"`
	GuestID       int64     `json:"guest_id"`
	PropertyID    int64     `json:"property_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Nights        int       `json:"nights"`
}

// Event is a published domain event with a JSON payload.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish runs every handler of the event type in subscription order, on the
// caller's goroutine. A failing handler does not stop the others; their
// errors are joined.
func (b *EventBus) Publish(event *Event) error {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler: %w", event.Type, err))
		}
	}
	return errors.Join(errs...)
}

// PublishJSON serializes the payload and publishes an event. A nil bus
// discards everything.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	event, err := NewJSONEvent(eventType, payload)
	if err != nil {
		return err
	}
	return b.Publish(&event)
}

func NewJSONEvent(eventType string, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	return Event{Type: eventType, Payload: raw, CreatedAt: time.Now()}, nil
}
