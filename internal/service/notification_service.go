package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/loads-service/internal/config"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/observability"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordChanged, n.handleAuditOnly)
	n.dispatcher.Subscribe(events.EventLoadCreated, n.handleLoadChanged)
	n.dispatcher.Subscribe(events.EventLoadUpdated, n.handleLoadChanged)
	n.dispatcher.Subscribe(events.EventLoadDeleted, n.handleLoadChanged)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.metrics.RecordEvent(string(event.Type))
	n.logger.Info("UserRegistered", zap.String("subject_id", event.SubjectID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAuditOnly(_ context.Context, event events.Event) error {
	n.metrics.RecordEvent(string(event.Type))
	n.logger.Info(string(event.Type), zap.String("subject_id", event.SubjectID))
	return nil
}

func (n *NotificationService) handleLoadChanged(ctx context.Context, event events.Event) error {
	n.metrics.RecordEvent(string(event.Type))
	n.logger.Info(string(event.Type), zap.String("subject_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
