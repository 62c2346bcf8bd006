package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/events"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
)

type fakeAuthAPI struct {
	token     string
	loginErr  error
	signupErr error
	signups   []domain.SignUpRequest
}

func (f *fakeAuthAPI) Login(_ context.Context, _ domain.LoginRequest) (*domain.AuthLogin, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &domain.AuthLogin{AccessToken: f.token}, nil
}

func (f *fakeAuthAPI) SignUp(_ context.Context, req domain.SignUpRequest) error {
	f.signups = append(f.signups, req)
	return f.signupErr
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

type failingStorage struct {
	persistence.Storage
	getErr error
	setErr error
}

func (s failingStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.Storage.Get(ctx, key)
}

func (s failingStorage) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.Storage.Set(ctx, key, value)
}

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

type fixture struct {
	storage *persistence.Memory
	api     *fakeAuthAPI
	nav     *recordingNavigator
	audit   events.Dispatcher
}

func newFixture() *fixture {
	return &fixture{
		storage: persistence.NewMemory(),
		api:     &fakeAuthAPI{},
		nav:     &recordingNavigator{},
		audit:   events.NewInMemoryDispatcher(),
	}
}

func (f *fixture) holder(t *testing.T) *Holder {
	t.Helper()
	h, err := New(context.Background(), Dependencies{
		Storage:   f.storage,
		Auth:      f.api,
		Navigator: f.nav,
		Events:    f.audit,
	})
	require.NoError(t, err)
	return h
}

func (f *fixture) stored(t *testing.T) (string, bool) {
	t.Helper()
	v, ok, err := f.storage.Get(context.Background(), persistence.TokenKey)
	require.NoError(t, err)
	return v, ok
}

func guest() domain.Session {
	return domain.GuestSession()
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(context.Background(), Dependencies{Auth: &fakeAuthAPI{}})
	assert.Error(t, err)
	_, err = New(context.Background(), Dependencies{Storage: persistence.NewMemory()})
	assert.Error(t, err)
}

func TestNew_NoStoredTokenStartsUnauthenticated(t *testing.T) {
	f := newFixture()
	h := f.holder(t)

	assert.Equal(t, guest(), h.Snapshot())
	assert.False(t, h.IsLoggedIn())
	assert.Equal(t, domain.RoleGuest, h.Role())
	assert.Empty(t, h.Username())
	assert.Empty(t, h.Token())
	assert.Empty(t, f.nav.paths)
}

func TestNew_RestoresStoredToken(t *testing.T) {
	f := newFixture()
	token := mintToken(t, jwt.MapClaims{"role": "CUSTOMER", "sub": "carol"})
	require.NoError(t, f.storage.Set(context.Background(), persistence.TokenKey, token))

	var restored []events.Event
	f.audit.Subscribe(events.EventSessionRestored, func(_ context.Context, e events.Event) error {
		restored = append(restored, e)
		return nil
	})

	h := f.holder(t)
	assert.Equal(t, domain.Session{LoggedIn: true, Role: domain.RoleCustomer, Username: "carol", Token: token}, h.Snapshot())
	require.Len(t, restored, 1)
	assert.Equal(t, "carol", restored[0].Username)
}

func TestNew_MalformedStoredTokenForcesLogout(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.storage.Set(context.Background(), persistence.TokenKey, "not-a-jwt"))

	h := f.holder(t)
	assert.Equal(t, guest(), h.Snapshot())
	_, ok := f.stored(t)
	assert.False(t, ok)
	assert.Equal(t, []string{auth.LoginPath}, f.nav.paths)
}

func TestNew_UnreadableStorageForcesLogout(t *testing.T) {
	f := newFixture()
	h, err := New(context.Background(), Dependencies{
		Storage:   failingStorage{Storage: f.storage, getErr: errors.New("disk gone")},
		Auth:      f.api,
		Navigator: f.nav,
	})
	require.NoError(t, err)
	assert.Equal(t, guest(), h.Snapshot())
	assert.Equal(t, []string{auth.LoginPath}, f.nav.paths)
}

func TestLogin_Admin(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})
	h := f.holder(t)

	var roles []domain.Role
	var names []string
	h.Subscribe(func(s domain.Session) {
		roles = append(roles, s.Role)
		names = append(names, s.Username)
	})

	require.True(t, h.Login(context.Background(), "alice", "secret"))

	assert.Equal(t, []domain.Role{domain.RoleGuest, domain.RoleAdmin}, roles)
	assert.Equal(t, []string{"", "alice"}, names)
	assert.True(t, h.IsLoggedIn())
	assert.Equal(t, f.api.token, h.Token())
	assert.True(t, h.Snapshot().Valid())

	stored, ok := f.stored(t)
	assert.True(t, ok)
	assert.Equal(t, f.api.token, stored)
	assert.Empty(t, f.nav.paths)
}

func TestLogin_UnknownRoleMapsToGuest(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "UNKNOWN", "sub": "bob"})
	h := f.holder(t)

	var last domain.Session
	h.Subscribe(func(s domain.Session) { last = s })

	require.True(t, h.Login(context.Background(), "bob", "pw"))
	assert.Equal(t, domain.RoleGuest, last.Role)
	assert.Equal(t, "bob", last.Username)
}

func TestLogin_ApiFailureResetsAndReturnsFalse(t *testing.T) {
	f := newFixture()
	token := mintToken(t, jwt.MapClaims{"role": "CUSTOMER", "sub": "carol"})
	require.NoError(t, f.storage.Set(context.Background(), persistence.TokenKey, token))
	h := f.holder(t)
	require.True(t, h.IsLoggedIn())

	var failures []events.Event
	f.audit.Subscribe(events.EventLoginFailed, func(_ context.Context, e events.Event) error {
		failures = append(failures, e)
		return nil
	})

	f.api.loginErr = errors.New("connection refused")
	assert.False(t, h.Login(context.Background(), "carol", "wrong"))

	assert.Equal(t, guest(), h.Snapshot())
	_, ok := f.stored(t)
	assert.False(t, ok)
	assert.Empty(t, f.nav.paths)
	require.Len(t, failures, 1)
	assert.Equal(t, "connection refused", failures[0].Reason)
}

func TestLogin_EmptyTokenFails(t *testing.T) {
	f := newFixture()
	f.api.token = "  "
	h := f.holder(t)

	assert.False(t, h.Login(context.Background(), "dave", "pw"))
	assert.Equal(t, guest(), h.Snapshot())
}

func TestLogin_MalformedTokenForcesLogout(t *testing.T) {
	f := newFixture()
	f.api.token = "definitely.not.jwt"
	h := f.holder(t)

	var published []domain.Session
	h.Subscribe(func(s domain.Session) { published = append(published, s) })

	assert.False(t, h.Login(context.Background(), "eve", "pw"))
	assert.Equal(t, guest(), h.Snapshot())
	_, ok := f.stored(t)
	assert.False(t, ok)
	assert.Equal(t, []string{auth.LoginPath}, f.nav.paths)
	assert.Equal(t, []domain.Session{guest(), guest()}, published)
}

func TestLogin_ExpiredTokenRejectedWhenConfigured(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{
		"role": "ADMIN",
		"sub":  "alice",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	h, err := New(context.Background(), Dependencies{
		Storage:   f.storage,
		Auth:      f.api,
		Codec:     auth.NewCodec(true),
		Navigator: f.nav,
	})
	require.NoError(t, err)

	assert.False(t, h.Login(context.Background(), "alice", "pw"))
	assert.Equal(t, domain.RoleGuest, h.Role())
}

func TestLogin_StorageWriteFailure(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})
	h, err := New(context.Background(), Dependencies{
		Storage: failingStorage{Storage: f.storage, setErr: errors.New("quota exceeded")},
		Auth:    f.api,
	})
	require.NoError(t, err)

	assert.False(t, h.Login(context.Background(), "alice", "pw"))
	assert.False(t, h.IsLoggedIn())
}

func TestLogin_PersistFailureDropsEarlierToken(t *testing.T) {
	f := newFixture()
	stale := mintToken(t, jwt.MapClaims{"role": "CUSTOMER", "sub": "bob"})
	require.NoError(t, f.storage.Set(context.Background(), persistence.TokenKey, stale))
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})

	h, err := New(context.Background(), Dependencies{
		Storage: failingStorage{Storage: f.storage, setErr: errors.New("quota exceeded")},
		Auth:    f.api,
	})
	require.NoError(t, err)
	require.Equal(t, "bob", h.Username())

	assert.False(t, h.Login(context.Background(), "alice", "pw"))
	_, ok, err := f.storage.Get(context.Background(), persistence.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	next, err := New(context.Background(), Dependencies{Storage: f.storage, Auth: f.api})
	require.NoError(t, err)
	assert.Equal(t, guest(), next.Snapshot())
}

func TestLogout_IsIdempotent(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})
	h := f.holder(t)
	require.True(t, h.Login(context.Background(), "alice", "pw"))

	h.Logout(context.Background())
	first := h.Snapshot()
	h.Logout(context.Background())
	second := h.Snapshot()

	assert.Equal(t, guest(), first)
	assert.Equal(t, first, second)
	_, ok := f.stored(t)
	assert.False(t, ok)
	assert.Equal(t, []string{auth.LoginPath, auth.LoginPath}, f.nav.paths)
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "CUSTOMER", "sub": "carol"})
	h := f.holder(t)

	var calls []string
	unsubA := h.Subscribe(func(domain.Session) { calls = append(calls, "a") })
	h.Subscribe(func(domain.Session) { calls = append(calls, "b") })
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	h.Login(context.Background(), "carol", "pw")
	assert.Equal(t, []string{"a", "b"}, calls)

	unsubA()
	unsubA()
	calls = nil
	h.Logout(context.Background())
	assert.Equal(t, []string{"b"}, calls)
}

func TestSubscribe_ListenerMayReadHolder(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})
	h := f.holder(t)

	var seen []domain.Role
	h.Subscribe(func(domain.Session) { seen = append(seen, h.Role()) })
	h.Login(context.Background(), "alice", "pw")

	assert.Equal(t, []domain.Role{domain.RoleGuest, domain.RoleAdmin}, seen)
}

func TestSignup(t *testing.T) {
	f := newFixture()
	h := f.holder(t)

	assert.True(t, h.Signup(context.Background(), "frank", "frank@example.com", "pw", " 555 "))
	require.Len(t, f.api.signups, 1)
	assert.Equal(t, "555", f.api.signups[0].PhoneNumber)
	assert.False(t, h.IsLoggedIn())
	_, ok := f.stored(t)
	assert.False(t, ok)

	f.api.signupErr = errors.New("username taken")
	assert.False(t, h.Signup(context.Background(), "frank", "frank@example.com", "pw", ""))
}

func TestGateOverHolder(t *testing.T) {
	f := newFixture()
	f.api.token = mintToken(t, jwt.MapClaims{"role": "ADMIN", "sub": "alice"})
	h := f.holder(t)
	require.True(t, h.Login(context.Background(), "alice", "pw"))

	gateNav := &recordingNavigator{}
	gate := auth.NewGate(h, gateNav)
	assert.True(t, gate.Allow(domain.RoleAdmin))
	assert.Empty(t, gateNav.paths)
	assert.False(t, gate.Allow(domain.RoleCustomer))
	assert.Equal(t, []string{auth.LoginPath}, gateNav.paths)
}
