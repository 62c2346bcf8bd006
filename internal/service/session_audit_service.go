package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/events"
)

// SessionAuditService logs the session transitions published by holders.
type SessionAuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu     sync.Mutex
	counts map[events.EventType]int64
}

// NewSessionAuditService creates the service.
func NewSessionAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *SessionAuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionAuditService{
		dispatcher: dispatcher,
		logger:     logger,
		counts:     make(map[events.EventType]int64),
	}
}

// RegisterHandlers subscribes to events.
func (a *SessionAuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoggedIn, a.handleLoggedIn)
	a.dispatcher.Subscribe(events.EventSessionRestored, a.handleRestored)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleFailure)
	a.dispatcher.Subscribe(events.EventTokenRejected, a.handleFailure)
	a.dispatcher.Subscribe(events.EventSignupFailed, a.handleFailure)
	a.dispatcher.Subscribe(events.EventLoggedOut, a.handleLoggedOut)
	a.dispatcher.Subscribe(events.EventSignedUp, a.handleSignedUp)
}

// Counts returns how many events of each type were seen.
func (a *SessionAuditService) Counts() map[events.EventType]int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[events.EventType]int64, len(a.counts))
	for k, v := range a.counts {
		out[k] = v
	}
	return out
}

func (a *SessionAuditService) handleLoggedIn(ctx context.Context, event events.Event) error {
	a.count(event)
	a.logger.Info("LoggedIn", zap.String("event_id", event.ID), zap.String("username", event.Username), zap.String("role", string(event.Role)))
	return nil
}

func (a *SessionAuditService) handleRestored(ctx context.Context, event events.Event) error {
	a.count(event)
	a.logger.Debug("SessionRestored", zap.String("event_id", event.ID), zap.String("username", event.Username), zap.String("role", string(event.Role)))
	return nil
}

func (a *SessionAuditService) handleLoggedOut(ctx context.Context, event events.Event) error {
	a.count(event)
	a.logger.Info("LoggedOut", zap.String("event_id", event.ID))
	return nil
}

func (a *SessionAuditService) handleSignedUp(ctx context.Context, event events.Event) error {
	a.count(event)
	a.logger.Info("SignedUp", zap.String("event_id", event.ID))
	return nil
}

func (a *SessionAuditService) handleFailure(ctx context.Context, event events.Event) error {
	a.count(event)
	a.logger.Warn(string(event.Type), zap.String("event_id", event.ID), zap.String("reason", event.Reason))
	return nil
}

func (a *SessionAuditService) count(event events.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts[event.Type]++
}
