package service

import (
	"time"

	"github.com/spec-kit/training-marketplace/internal/catalog"
	"github.com/spec-kit/training-marketplace/internal/domain"
)

// CatalogStore is the read side of the entity store.
type CatalogStore interface {
	Events() []domain.Event
	EventByID(id int64) (domain.Event, bool)
	Users() []domain.User
	Principal() (domain.User, bool)
}

// EventView is an event together with its derived flags.
type EventView struct {
	Event     domain.Event
	Expired   bool
	Full      bool
	CanEnroll bool
}

// CatalogService evaluates catalog views against a store snapshot and the
// configured reference clock.
type CatalogService struct {
	store CatalogStore
	now   func() time.Time
}

// NewCatalogService constructs the service. A nil clock uses time.Now.
func NewCatalogService(store CatalogStore, now func() time.Time) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{store: store, now: now}
}

// Now returns the reference time used for expiry.
func (s *CatalogService) Now() time.Time {
	return s.now()
}

// AllEvents returns every event in store order.
func (s *CatalogService) AllEvents() []domain.Event {
	return s.store.Events()
}

// ActiveEvents returns approved, upcoming events.
func (s *CatalogService) ActiveEvents() []domain.Event {
	return catalog.Active(s.store.Events(), s.now())
}

// ExpiredEvents returns events whose start time has passed.
func (s *CatalogService) ExpiredEvents() []domain.Event {
	return catalog.Expired(s.store.Events(), s.now())
}

// PendingEvents returns events awaiting moderation.
func (s *CatalogService) PendingEvents() []domain.Event {
	return catalog.Pending(s.store.Events())
}

// PublicStats summarises the whole active catalog, ignoring any browse filter.
func (s *CatalogService) PublicStats() catalog.PublicStats {
	return catalog.ComputePublicStats(s.store.Events(), s.now())
}

// Browse filters the active events.
func (s *CatalogService) Browse(q catalog.Query) []domain.Event {
	return catalog.Search(s.ActiveEvents(), q)
}

// Event returns one event with its derived flags.
func (s *CatalogService) Event(id int64) (EventView, error) {
	event, ok := s.store.EventByID(id)
	if !ok {
		return EventView{}, domain.ErrEventNotFound
	}
	now := s.now()
	return EventView{
		Event:     event,
		Expired:   catalog.IsExpired(event, now),
		Full:      catalog.IsFull(event),
		CanEnroll: catalog.CanEnroll(event, now),
	}, nil
}

// EventsByProvider returns the events owned by the given provider email.
func (s *CatalogService) EventsByProvider(email string) []domain.Event {
	return catalog.ByProvider(s.store.Events(), email)
}

// MyEvents returns the events of the current principal. Without a principal
// the result is empty.
func (s *CatalogService) MyEvents() []domain.Event {
	principal, ok := s.store.Principal()
	if !ok {
		return nil
	}
	return s.EventsByProvider(principal.Email)
}

// Providers lists provider accounts.
func (s *CatalogService) Providers() []domain.User {
	return catalog.Providers(s.store.Users())
}

// Dashboard builds the role specific view for principal.
func (s *CatalogService) Dashboard(principal domain.User, q catalog.Query) (catalog.Dashboard, error) {
	return catalog.BuildDashboard(principal, s.store.Events(), s.store.Users(), s.now(), q)
}
