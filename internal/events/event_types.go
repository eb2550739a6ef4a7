package events

import (
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// EventType enumerates supported lifecycle notifications.
type EventType string

const (
	EventCreated       EventType = "event_created"
	EventStatusChanged EventType = "event_status_changed"
	SessionStarted     EventType = "session_started"
	SessionCleared     EventType = "session_cleared"
)

// Actor identifies who triggered a notification.
type Actor struct {
	UserID *int64      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event is a notification emitted by the service layer.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EventID   int64       `json:"event_id,omitempty"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// EventCreatedPayload payload.
type EventCreatedPayload struct {
	Title         string           `json:"title"`
	Type          domain.EventType `json:"type"`
	ProviderEmail string           `json:"provider_email"`
	OccursAt      time.Time        `json:"occurs_at"`
}

// EventStatusChangedPayload payload.
type EventStatusChangedPayload struct {
	OldStatus domain.EventStatus `json:"old_status"`
	NewStatus domain.EventStatus `json:"new_status"`
}
