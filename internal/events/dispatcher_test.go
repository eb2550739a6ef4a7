package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/training-marketplace/internal/events"
)

func TestDispatcher_PublishReachesSubscribersInOrder(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(events.EventCreated, func(_ context.Context, e events.Event) error {
		calls = append(calls, "first:"+string(e.Type))
		return nil
	})
	d.Subscribe(events.EventCreated, func(_ context.Context, e events.Event) error {
		calls = append(calls, "second:"+string(e.Type))
		return nil
	})
	d.Subscribe(events.EventStatusChanged, func(context.Context, events.Event) error {
		calls = append(calls, "unrelated")
		return nil
	})

	err := d.Publish(context.Background(), events.Event{Type: events.EventCreated})

	assert.NoError(t, err)
	assert.Equal(t, []string{"first:event_created", "second:event_created"}, calls)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	boom := errors.New("boom")
	reached := false
	d.Subscribe(events.EventStatusChanged, func(context.Context, events.Event) error { return boom })
	d.Subscribe(events.EventStatusChanged, func(context.Context, events.Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), events.Event{Type: events.EventStatusChanged})

	assert.ErrorIs(t, err, boom)
	assert.True(t, reached)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	assert.NoError(t, d.Publish(context.Background(), events.Event{Type: events.SessionCleared}))
}
