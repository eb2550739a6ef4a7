package domain

import "time"

// EventStatus enumerates lifecycle states for training events.
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// IsDecision reports whether the status is a valid admin decision target.
func (s EventStatus) IsDecision() bool {
	return s == EventStatusApproved || s == EventStatusRejected
}

// EventType enumerates the kinds of offering a provider can publish.
type EventType string

const (
	EventTypeWebinar EventType = "webinar"
	EventTypeSeminar EventType = "seminar"
	EventTypeCourse  EventType = "course"
)

// EventTypeAll disables type filtering.
const EventTypeAll EventType = "all"

// Valid reports whether t is one of the concrete event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeWebinar, EventTypeSeminar, EventTypeCourse:
		return true
	}
	return false
}

// Event is a scheduled training offering submitted by a provider.
type Event struct {
	ID                  int64
	Title               string
	Type                EventType
	Description         string
	Category            string
	Provider            string
	ProviderEmail       string
	ProviderPhone       string
	OccursAt            time.Time
	Duration            string
	Price               float64
	MaxParticipants     int
	CurrentParticipants int
	Status              EventStatus
	Requirements        string
	ImageURL            string
	CreatedAt           time.Time
}

// EventDraft carries the provider supplied fields of a new event.
// Validation happens before a draft reaches the service layer.
type EventDraft struct {
	Title           string
	Type            EventType
	Description     string
	Category        string
	OccursAt        time.Time
	Duration        string
	Price           float64
	MaxParticipants int
	Requirements    string
	ImageURL        string
}
