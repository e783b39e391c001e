package domain

import "fmt"

// EventType is the delivery format of an event.
type EventType string

const (
	EventTypeDigital  EventType = "digital"
	EventTypeHybrid   EventType = "hybrid"
	EventTypeInPerson EventType = "in-person"
)

// ParseEventType returns the EventType for s or ErrInvalidInput.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDigital, EventTypeHybrid, EventTypeInPerson:
		return true
	}
	return false
}

// RequiresAddress reports whether events of this type happen at a physical venue.
func (t EventType) RequiresAddress() bool {
	return t == EventTypeHybrid || t == EventTypeInPerson
}
