package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventAccountRoleChanged, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "e1", Type: EventAccountRoleChanged, AccountID: "u1"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].AccountID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventAccountRoleChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAccountDeactivated}))
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventAccountStatusChanged, func(context.Context, Event) error {
		return errors.New("boom")
	})
	var reached bool
	dispatcher.Subscribe(EventAccountStatusChanged, func(context.Context, Event) error {
		reached = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAccountStatusChanged}))
	assert.True(t, reached)
}
