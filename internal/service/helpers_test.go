package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/events"
	"github.com/spec-kit/training-marketplace/internal/seed"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/internal/store"
)

var referenceTime = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return referenceTime }

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) handle(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newRecordingDispatcher() (events.Dispatcher, *recorder) {
	d := events.NewInMemoryDispatcher()
	rec := &recorder{}
	for _, typ := range []events.EventType{events.EventCreated, events.EventStatusChanged, events.SessionStarted, events.SessionCleared} {
		d.Subscribe(typ, rec.handle)
	}
	return d, rec
}

func newEventService(t *testing.T) (*service.EventService, *store.Store, *recorder) {
	t.Helper()
	s := store.New(seed.Fixtures())
	d, rec := newRecordingDispatcher()
	svc := service.NewEventService(service.EventDependencies{
		Store:      s,
		IDs:        service.NewClockIDs(fixedClock),
		Dispatcher: d,
		Logger:     zaptest.NewLogger(t),
		Now:        fixedClock,
	})
	return svc, s, rec
}

func sampleDraft() domain.EventDraft {
	return domain.EventDraft{
		Title:           "Go for Backend Engineers",
		Type:            domain.EventTypeCourse,
		Description:     "Services, concurrency and testing in Go.",
		Category:        "Backend Development",
		OccursAt:        referenceTime.Add(30 * 24 * time.Hour),
		Duration:        "4 weeks",
		Price:           199,
		MaxParticipants: 25,
		Requirements:    "Any programming experience",
		ImageURL:        "https://example.com/go.png",
	}
}

func provider(t *testing.T) domain.User {
	t.Helper()
	return seed.Users()[1]
}
