// Package catalog derives the visible views of the event collection.
//
// Every function here is pure: the result depends only on the events,
// users, reference time and query passed in. Inputs are never modified and
// results preserve the input order.
package catalog

import (
	"strings"
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// IsExpired reports whether the event no longer lies strictly after now.
func IsExpired(e domain.Event, now time.Time) bool {
	return !e.OccursAt.After(now)
}

// IsFull reports whether every seat is taken.
func IsFull(e domain.Event) bool {
	return e.CurrentParticipants >= e.MaxParticipants
}

// CanEnroll reports whether a student could sign up for the event.
func CanEnroll(e domain.Event, now time.Time) bool {
	return !IsExpired(e, now) && !IsFull(e) && e.Status == domain.EventStatusApproved
}

// Active returns approved events that have not expired.
func Active(events []domain.Event, now time.Time) []domain.Event {
	return selectEvents(events, func(e domain.Event) bool {
		return !IsExpired(e, now) && e.Status == domain.EventStatusApproved
	})
}

// Expired returns every expired event regardless of status. A pending event
// in the past shows up both here and in Pending.
func Expired(events []domain.Event, now time.Time) []domain.Event {
	return selectEvents(events, func(e domain.Event) bool {
		return IsExpired(e, now)
	})
}

// Pending returns events awaiting an admin decision, expired or not.
func Pending(events []domain.Event) []domain.Event {
	return WithStatus(events, domain.EventStatusPending)
}

// WithStatus returns events in the given status.
func WithStatus(events []domain.Event, status domain.EventStatus) []domain.Event {
	return selectEvents(events, func(e domain.Event) bool {
		return e.Status == status
	})
}

// ByProvider returns the events owned by the provider with the given email.
func ByProvider(events []domain.Event, email string) []domain.Event {
	return selectEvents(events, func(e domain.Event) bool {
		return e.ProviderEmail == email
	})
}

// Providers returns the users with the provider role.
func Providers(users []domain.User) []domain.User {
	var out []domain.User
	for _, u := range users {
		if u.IsProvider() {
			out = append(out, u)
		}
	}
	return out
}

// Query narrows a list of events by free text and type.
type Query struct {
	Term string
	Type domain.EventType
	// MatchCategory extends the free text match to the category.
	MatchCategory bool
}

// Filter keeps events whose title, description or provider name contains
// term (case-insensitive) and whose type equals eventType, unless eventType
// is "all".
func Filter(events []domain.Event, term string, eventType domain.EventType) []domain.Event {
	return Search(events, Query{Term: term, Type: eventType})
}

// Search applies q to events.
func Search(events []domain.Event, q Query) []domain.Event {
	needle := strings.ToLower(q.Term)
	return selectEvents(events, func(e domain.Event) bool {
		return q.matchesText(e, needle) && q.matchesType(e)
	})
}

func (q Query) matchesText(e domain.Event, needle string) bool {
	if containsFold(e.Title, needle) || containsFold(e.Description, needle) || containsFold(e.Provider, needle) {
		return true
	}
	return q.MatchCategory && containsFold(e.Category, needle)
}

func (q Query) matchesType(e domain.Event) bool {
	return q.Type == domain.EventTypeAll || e.Type == q.Type
}

func containsFold(field, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(field), lowerNeedle)
}

func selectEvents(events []domain.Event, keep func(domain.Event) bool) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
