package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var got []EventType
	d.Subscribe(EventLoadCreated, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventLoadCreated}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventLoadDeleted}))
	require.Equal(t, []EventType{EventLoadCreated}, got)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	second := false
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	require.True(t, second)
}
