package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// CreateEventRequest is the provider event form.
type CreateEventRequest struct {
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Duration        string  `json:"duration"`
	Price           float64 `json:"price"`
	MaxParticipants int     `json:"max_participants"`
	Requirements    string  `json:"requirements"`
	Image           string  `json:"image"`
}

// Validate returns a message per invalid field. Dates are read in UTC and
// must lie strictly after now.
func (r CreateEventRequest) Validate(now time.Time) map[string]any {
	errs := map[string]any{}

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "Title is required"
	}
	if r.Type == "" {
		errs["type"] = "Event type is required"
	} else if !domain.EventType(r.Type).Valid() {
		errs["type"] = "Event type must be webinar, seminar or course"
	}
	if strings.TrimSpace(r.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(r.Category) == "" {
		errs["category"] = "Category is required"
	}
	if r.Date == "" {
		errs["date"] = "Date is required"
	} else {
		clock := r.Time
		if clock == "" {
			clock = "00:00"
		}
		occurs, err := time.Parse(dateTimeLayout, r.Date+"T"+clock)
		switch {
		case err != nil:
			errs["date"] = "Date must be YYYY-MM-DD and time HH:MM"
		case !occurs.After(now):
			errs["date"] = "Event date must be in the future"
		}
	}
	if r.Time == "" {
		errs["time"] = "Time is required"
	}
	if strings.TrimSpace(r.Duration) == "" {
		errs["duration"] = "Duration is required"
	}
	if r.Price <= 0 {
		errs["price"] = "Price must be greater than 0"
	}
	if r.MaxParticipants <= 0 {
		errs["max_participants"] = "Maximum participants must be greater than 0"
	}
	if strings.TrimSpace(r.Image) == "" {
		errs["image"] = "Image URL is required"
	}
	return errs
}

// ToDraft converts a validated request into a draft.
func (r CreateEventRequest) ToDraft() domain.EventDraft {
	occurs, _ := time.Parse(dateTimeLayout, r.Date+"T"+r.Time)
	return domain.EventDraft{
		Title:           strings.TrimSpace(r.Title),
		Type:            domain.EventType(r.Type),
		Description:     strings.TrimSpace(r.Description),
		Category:        strings.TrimSpace(r.Category),
		OccursAt:        occurs,
		Duration:        strings.TrimSpace(r.Duration),
		Price:           r.Price,
		MaxParticipants: r.MaxParticipants,
		Requirements:    strings.TrimSpace(r.Requirements),
		ImageURL:        strings.TrimSpace(r.Image),
	}
}

// EventResponse is the public representation of an event.
type EventResponse struct {
	ID                  int64              `json:"id"`
	Title               string             `json:"title"`
	Type                domain.EventType   `json:"type"`
	Description         string             `json:"description"`
	Category            string             `json:"category"`
	Provider            string             `json:"provider"`
	ProviderEmail       string             `json:"provider_email"`
	ProviderPhone       string             `json:"provider_phone"`
	Date                time.Time          `json:"date"`
	Duration            string             `json:"duration"`
	Price               float64            `json:"price"`
	MaxParticipants     int                `json:"max_participants"`
	CurrentParticipants int                `json:"current_participants"`
	Status              domain.EventStatus `json:"status"`
	Requirements        string             `json:"requirements"`
	Image               string             `json:"image"`
	CreatedAt           time.Time          `json:"created_at"`
}

// EventDetailResponse adds the derived flags of a single event.
type EventDetailResponse struct {
	EventResponse
	Expired   bool `json:"expired"`
	Full      bool `json:"full"`
	CanEnroll bool `json:"can_enroll"`
}

// NewEventResponse maps a domain event.
func NewEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Type:                e.Type,
		Description:         e.Description,
		Category:            e.Category,
		Provider:            e.Provider,
		ProviderEmail:       e.ProviderEmail,
		ProviderPhone:       e.ProviderPhone,
		Date:                e.OccursAt,
		Duration:            e.Duration,
		Price:               e.Price,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		Status:              e.Status,
		Requirements:        e.Requirements,
		Image:               e.ImageURL,
		CreatedAt:           e.CreatedAt,
	}
}

// NewEventList maps a list of events, never returning nil.
func NewEventList(events []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
