package store

import (
	"sync"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// Seed is the initial content loaded into a Store.
type Seed struct {
	Events []domain.Event
	Users  []domain.User
}

// Store holds events and users in insertion order plus the currently
// authenticated principal. Values are copied in and out, so callers never
// share memory with the stored records.
type Store struct {
	mu        sync.RWMutex
	events    []domain.Event
	users     []domain.User
	principal *domain.User
}

// New builds a store from seed data.
func New(seed Seed) *Store {
	return &Store{
		events: append([]domain.Event(nil), seed.Events...),
		users:  append([]domain.User(nil), seed.Users...),
	}
}

// Events returns a snapshot of all events in insertion order.
func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Event(nil), s.events...)
}

// EventByID scans for the event with the given id.
func (s *Store) EventByID(id int64) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// AppendEvent adds an event at the end of the collection.
func (s *Store) AppendEvent(e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// ReplaceEvent overwrites the stored event sharing e's id. It reports
// whether a replacement happened; an absent id leaves the store untouched.
func (s *Store) ReplaceEvent(e domain.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return true
		}
	}
	return false
}

// Users returns a snapshot of all users in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

// UserByID scans for the user with the given id.
func (s *Store) UserByID(id int64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// UserByEmail scans for the first user with the given email.
func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// Principal returns the current principal, if any.
func (s *Store) Principal() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return domain.User{}, false
	}
	return *s.principal, true
}

// SetPrincipal records u as the authenticated principal.
func (s *Store) SetPrincipal(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = &u
}

// ClearPrincipal forgets the current principal.
func (s *Store) ClearPrincipal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
}
