package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/events"
)

func TestSessionAuditService_CountsTransitions(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	audit := NewSessionAuditService(dispatcher, nil)
	audit.RegisterHandlers()

	ctx := context.Background()
	admin := domain.Session{LoggedIn: true, Role: domain.RoleAdmin, Username: "alice", Token: "t"}
	require.NoError(t, dispatcher.Publish(ctx, events.NewEvent(events.EventLoggedIn, admin)))
	require.NoError(t, dispatcher.Publish(ctx, events.NewEvent(events.EventLoggedOut, domain.GuestSession())))
	require.NoError(t, dispatcher.Publish(ctx, events.NewEvent(events.EventLoggedOut, domain.GuestSession())))
	require.NoError(t, dispatcher.Publish(ctx, events.NewEvent(events.EventTokenRejected, domain.GuestSession())))

	counts := audit.Counts()
	assert.Equal(t, int64(1), counts[events.EventLoggedIn])
	assert.Equal(t, int64(2), counts[events.EventLoggedOut])
	assert.Equal(t, int64(1), counts[events.EventTokenRejected])
	assert.Zero(t, counts[events.EventSignedUp])
}

func TestSessionAuditService_NilDispatcher(t *testing.T) {
	audit := NewSessionAuditService(nil, nil)
	audit.RegisterHandlers()
	assert.Empty(t, audit.Counts())
}
