package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/events"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
)

var errEmptyToken = errors.New("login response carried no access token")

// AuthAPI is the part of the API facade the holder needs.
type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthLogin, error)
	SignUp(ctx context.Context, req domain.SignUpRequest) error
}

// Decoder turns a bearer token into claims.
type Decoder interface {
	Decode(token string) (*auth.Claims, error)
}

// Listener receives every published session state.
type Listener func(domain.Session)

// Dependencies wires a Holder. Storage and Auth are required.
type Dependencies struct {
	Storage   persistence.Storage
	Auth      AuthAPI
	Codec     Decoder
	Navigator auth.Navigator
	// Events, when set, receives one typed event per session transition.
	Events events.Dispatcher
	Logger *zap.Logger
}

// Holder owns the authentication state of one client: login flag, role,
// username and bearer token. The token itself lives in Storage under
// persistence.TokenKey; the holder keeps a copy.
type Holder struct {
	mu    sync.Mutex
	state domain.Session

	storage   persistence.Storage
	api       AuthAPI
	codec     Decoder
	nav       auth.Navigator
	audit     events.Dispatcher
	listeners events.Dispatcher
	logger    *zap.Logger
}

// New builds a holder and restores any token found in storage. A stored token
// that cannot be read or decoded is treated as a logout.
func New(ctx context.Context, deps Dependencies) (*Holder, error) {
	if deps.Storage == nil {
		return nil, errors.New("session: storage is required")
	}
	if deps.Auth == nil {
		return nil, errors.New("session: auth API is required")
	}
	if deps.Codec == nil {
		deps.Codec = auth.NewCodec(false)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	h := &Holder{
		state:     domain.GuestSession(),
		storage:   deps.Storage,
		api:       deps.Auth,
		codec:     deps.Codec,
		nav:       deps.Navigator,
		audit:     deps.Events,
		listeners: events.NewInMemoryDispatcher(),
		logger:    deps.Logger,
	}
	h.restore(ctx)
	return h, nil
}

func (h *Holder) restore(ctx context.Context) {
	token, ok, err := h.storage.Get(ctx, persistence.TokenKey)
	if err != nil {
		h.logger.Warn("stored token unreadable", zap.Error(err))
		h.endSession(ctx, events.EventTokenRejected, err.Error())
		return
	}
	if !ok {
		return
	}

	claims, err := h.codec.Decode(token)
	if err != nil {
		h.logger.Warn("stored token rejected", zap.Error(err))
		h.endSession(ctx, events.EventTokenRejected, err.Error())
		return
	}
	h.apply(ctx, sessionFrom(token, claims), events.EventSessionRestored, "")
}

// Role returns the current role.
func (h *Holder) Role() domain.Role {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Role
}

// Username returns the current username, empty when unauthenticated.
func (h *Holder) Username() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Username
}

// IsLoggedIn reports whether a token was accepted.
func (h *Holder) IsLoggedIn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.LoggedIn
}

// Token returns the bearer token held for the session, empty when none.
func (h *Holder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Token
}

// Snapshot returns a copy of the whole state.
func (h *Holder) Snapshot() domain.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Subscribe registers fn and immediately calls it with the current state.
// Listeners run synchronously in registration order. The returned function
// removes fn and may be called more than once.
func (h *Holder) Subscribe(fn Listener) (unsubscribe func()) {
	h.mu.Lock()
	unsubscribe = h.listeners.Subscribe(events.EventSessionChanged, func(_ context.Context, e events.Event) error {
		fn(e.Session)
		return nil
	})
	current := h.state
	h.mu.Unlock()

	fn(current)
	return unsubscribe
}

// Login exchanges credentials for a token. Failures are logged and reported
// as false; the session is left unauthenticated.
func (h *Holder) Login(ctx context.Context, username, password string) bool {
	resp, err := h.api.Login(ctx, domain.LoginRequest{Username: username, Password: password})
	if err == nil && (resp == nil || strings.TrimSpace(resp.AccessToken) == "") {
		err = errEmptyToken
	}
	if err != nil {
		h.logger.Warn("login failed", zap.String("username", username), zap.Error(err))
		h.clearToken(ctx)
		h.apply(ctx, domain.GuestSession(), events.EventLoginFailed, err.Error())
		return false
	}

	token := resp.AccessToken
	if err := h.storage.Set(ctx, persistence.TokenKey, token); err != nil {
		h.logger.Error("failed to persist token", zap.Error(err))
		h.clearToken(ctx)
		h.apply(ctx, domain.GuestSession(), events.EventLoginFailed, fmt.Sprintf("persist token: %v", err))
		return false
	}

	claims, err := h.codec.Decode(token)
	if err != nil {
		h.logger.Warn("token rejected after login", zap.String("username", username), zap.Error(err))
		h.endSession(ctx, events.EventTokenRejected, err.Error())
		return false
	}

	next := sessionFrom(token, claims)
	h.apply(ctx, next, events.EventLoggedIn, "")
	h.logger.Info("logged in", zap.String("username", next.Username), zap.String("role", string(next.Role)))
	return true
}

// Logout clears the stored token, resets the state and navigates to the
// login view. Calling it repeatedly is harmless.
func (h *Holder) Logout(ctx context.Context) {
	h.endSession(ctx, events.EventLoggedOut, "")
}

// Signup registers a new account. It does not log the user in.
func (h *Holder) Signup(ctx context.Context, username, email, password, phone string) bool {
	req := domain.SignUpRequest{
		Username:    username,
		Email:       email,
		Password:    password,
		PhoneNumber: strings.TrimSpace(phone),
	}
	if err := h.api.SignUp(ctx, req); err != nil {
		h.logger.Warn("signup failed", zap.String("username", username), zap.Error(err))
		h.emit(ctx, events.EventSignupFailed, h.Snapshot(), err.Error())
		return false
	}
	h.emit(ctx, events.EventSignedUp, h.Snapshot(), "")
	return true
}

func (h *Holder) endSession(ctx context.Context, eventType events.EventType, reason string) {
	h.clearToken(ctx)
	h.apply(ctx, domain.GuestSession(), eventType, reason)
	if h.nav != nil {
		h.nav.Navigate(auth.LoginPath)
	}
}

func (h *Holder) clearToken(ctx context.Context) {
	if err := h.storage.Delete(ctx, persistence.TokenKey); err != nil {
		h.logger.Warn("failed to clear stored token", zap.Error(err))
	}
}

// apply replaces the state and notifies listeners outside the lock.
func (h *Holder) apply(ctx context.Context, next domain.Session, eventType events.EventType, reason string) {
	h.mu.Lock()
	h.state = next
	h.mu.Unlock()

	_ = h.listeners.Publish(ctx, events.NewEvent(events.EventSessionChanged, next))
	h.emit(ctx, eventType, next, reason)
}

func (h *Holder) emit(ctx context.Context, eventType events.EventType, s domain.Session, reason string) {
	if h.audit == nil {
		return
	}
	event := events.NewEvent(eventType, s)
	event.Reason = reason
	if err := h.audit.Publish(ctx, event); err != nil {
		h.logger.Warn("session event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func sessionFrom(token string, claims *auth.Claims) domain.Session {
	return domain.Session{
		LoggedIn: true,
		Role:     claims.Role(),
		Username: claims.Username(),
		Token:    token,
	}
}
