package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventPasswordChanged EventType = "password_changed"
	EventLoadCreated     EventType = "load_created"
	EventLoadUpdated     EventType = "load_updated"
	EventLoadDeleted     EventType = "load_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// LoadChangedPayload payload for load lifecycle events.
type LoadChangedPayload struct {
	LoadID      string `json:"load_id"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}
