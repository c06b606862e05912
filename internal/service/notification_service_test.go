package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/loads-service/internal/config"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/observability"
)

func TestNotificationService_CountsHandledEvents(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	svc := NewNotificationService(dispatcher, zap.NewNop(), metrics, config.NotificationConfig{})
	svc.RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventLoadCreated}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventLoadCreated}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered}))

	require.EqualValues(t, 2, metrics.EventCount(string(events.EventLoadCreated)))
	require.EqualValues(t, 1, metrics.EventCount(string(events.EventUserRegistered)))
	require.EqualValues(t, 0, metrics.EventCount(string(events.EventLoadDeleted)))
}

func TestNotificationService_RegisterHandlersNilDispatcher(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(nil, zap.NewNop(), observability.NewMetrics(), config.NotificationConfig{})
	svc.RegisterHandlers()
}
