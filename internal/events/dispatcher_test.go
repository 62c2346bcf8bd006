package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

func TestDispatcher_OrderedDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()
	var order []string

	d.Subscribe(EventLoggedIn, func(context.Context, Event) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(EventLoggedIn, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})
	d.Subscribe(EventLoggedOut, func(context.Context, Event) error {
		order = append(order, "other")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventLoggedIn, domain.GuestSession())))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0

	unsubscribe := d.Subscribe(EventSessionChanged, func(context.Context, Event) error {
		calls++
		return nil
	})
	kept := 0
	d.Subscribe(EventSessionChanged, func(context.Context, Event) error {
		kept++
		return nil
	})

	_ = d.Publish(context.Background(), NewEvent(EventSessionChanged, domain.GuestSession()))
	unsubscribe()
	unsubscribe()
	_ = d.Publish(context.Background(), NewEvent(EventSessionChanged, domain.GuestSession()))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, kept)
}

func TestDispatcher_HandlerErrorsDoNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	reached := false

	d.Subscribe(EventLoginFailed, func(context.Context, Event) error { return boom })
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventLoginFailed, domain.GuestSession()))
	assert.ErrorIs(t, err, boom)
	assert.True(t, reached)
}

func TestNewEvent_CopiesIdentity(t *testing.T) {
	s := domain.Session{LoggedIn: true, Role: domain.RoleAdmin, Username: "alice", Token: "t"}
	e := NewEvent(EventLoggedIn, s)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "alice", e.Username)
	assert.Equal(t, domain.RoleAdmin, e.Role)
	assert.False(t, e.Timestamp.IsZero())
}
