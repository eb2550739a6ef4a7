package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/events"
)

// EventStore is the part of the entity store the event workflows need.
type EventStore interface {
	Events() []domain.Event
	EventByID(id int64) (domain.Event, bool)
	AppendEvent(e domain.Event)
	ReplaceEvent(e domain.Event) bool
}

// EventService coordinates event creation and moderation.
type EventService struct {
	store      EventStore
	ids        IDGenerator
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// EventDependencies bundles collaborators for the event service.
type EventDependencies struct {
	Store      EventStore
	IDs        IDGenerator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	svc := &EventService{
		store:      deps.Store,
		ids:        deps.IDs,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.ids == nil {
		svc.ids = NewClockIDs(svc.now)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// CreateEvent stores a new pending event owned by creator. The draft is
// expected to be validated already.
func (s *EventService) CreateEvent(ctx context.Context, draft domain.EventDraft, creator domain.User) domain.Event {
	event := domain.Event{
		ID:                  s.ids.Next(),
		Title:               draft.Title,
		Type:                draft.Type,
		Description:         draft.Description,
		Category:            draft.Category,
		Provider:            creator.Name,
		ProviderEmail:       creator.Email,
		ProviderPhone:       creator.Phone,
		OccursAt:            draft.OccursAt,
		Duration:            draft.Duration,
		Price:               draft.Price,
		MaxParticipants:     draft.MaxParticipants,
		CurrentParticipants: 0,
		Status:              domain.EventStatusPending,
		Requirements:        draft.Requirements,
		ImageURL:            draft.ImageURL,
		CreatedAt:           s.now(),
	}
	s.store.AppendEvent(event)

	s.publishEvent(ctx, events.Event{
		Type:    events.EventCreated,
		EventID: event.ID,
		Actor:   userActor(creator),
		Payload: events.EventCreatedPayload{
			Title:         event.Title,
			Type:          event.Type,
			ProviderEmail: event.ProviderEmail,
			OccursAt:      event.OccursAt,
		},
	})
	return event
}

// SetEventStatus records an admin decision. Any status may be replaced by
// approved or rejected, including itself. An unknown id is ignored.
func (s *EventService) SetEventStatus(ctx context.Context, eventID int64, status domain.EventStatus) error {
	if !status.IsDecision() {
		return domain.ErrInvalidStatus
	}
	event, ok := s.store.EventByID(eventID)
	if !ok {
		s.logger.Debug("status change for unknown event ignored", zap.Int64("event_id", eventID))
		return nil
	}

	oldStatus := event.Status
	event.Status = status
	if !s.store.ReplaceEvent(event) {
		return nil
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventStatusChanged,
		EventID: event.ID,
		Payload: events.EventStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return nil
}

// Approve marks the event approved.
func (s *EventService) Approve(ctx context.Context, eventID int64) error {
	return s.SetEventStatus(ctx, eventID, domain.EventStatusApproved)
}

// Reject marks the event rejected.
func (s *EventService) Reject(ctx context.Context, eventID int64) error {
	return s.SetEventStatus(ctx, eventID, domain.EventStatusRejected)
}

func (s *EventService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("type", string(event.Type)),
			zap.Int64("event_id", event.EventID),
			zap.Error(err))
	}
}

func userActor(u domain.User) events.Actor {
	id := u.ID
	return events.Actor{UserID: &id, Role: u.Role}
}
