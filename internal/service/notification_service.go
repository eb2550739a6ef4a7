package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/training-marketplace/internal/config"
	"github.com/spec-kit/training-marketplace/internal/events"
)

// Publisher forwards serialized notifications to an external channel.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// NotificationService handles emitting notifications for lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  Publisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher Publisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCreated, n.handleEventCreated)
	n.dispatcher.Subscribe(events.EventStatusChanged, n.handleEventStatusChanged)
	n.dispatcher.Subscribe(events.SessionStarted, n.handleSession)
	n.dispatcher.Subscribe(events.SessionCleared, n.handleSession)
}

func (n *NotificationService) handleEventCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("EventCreated", zap.Int64("event_id", event.EventID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return n.forward(ctx, event)
}

func (n *NotificationService) handleEventStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("EventStatusChanged", zap.Int64("event_id", event.EventID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return n.forward(ctx, event)
}

func (n *NotificationService) handleSession(_ context.Context, event events.Event) error {
	n.logger.Debug(string(event.Type), zap.Any("actor", event.Actor))
	return nil
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.publisher.Publish(ctx, body)
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("event_id", event.EventID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("event_id", event.EventID),
		zap.String("event_type", string(event.Type)))
}
