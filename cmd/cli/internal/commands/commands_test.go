package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
)

func mint(t *testing.T, sub, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "role": role}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func newGlobals(t *testing.T, token string) (*Globals, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			if token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `{"accessToken":"`+token+`"}`)
		case "/bicycles":
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `{"results":[{"id":"b1","brand":"Gazelle","model":"Ultimate","categories":["CITY"],"hourlyPrice":4.5,"status":"AVAILABLE"}]}`)
		case "/rentals":
			_, _ = io.WriteString(w, `{"results":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &Globals{
		Out: out,
		Config: &config.Config{
			API: config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
			CLI: config.CLIConfig{StorageDir: t.TempDir()},
		},
	}, out
}

func TestLoginWhoamiLogout(t *testing.T) {
	ctx := context.Background()
	globals, out := newGlobals(t, mint(t, "root", "ADMIN"))

	require.NoError(t, (&LoginCmd{Username: "root", Password: "pw"}).Run(ctx, globals))
	assert.Contains(t, out.String(), "Logged in as root (ADMIN)")

	out.Reset()
	require.NoError(t, (&WhoamiCmd{}).Run(ctx, globals))
	assert.Equal(t, "root (ADMIN)\n", out.String())

	require.NoError(t, (&LogoutCmd{}).Run(ctx, globals))

	out.Reset()
	require.NoError(t, (&WhoamiCmd{}).Run(ctx, globals))
	assert.Equal(t, "not logged in\n", out.String())
}

func TestLoginFailure(t *testing.T) {
	globals, _ := newGlobals(t, "")

	err := (&LoginCmd{Username: "root", Password: "wrong"}).Run(context.Background(), globals)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestWhoamiClearsCorruptToken(t *testing.T) {
	globals, out := newGlobals(t, "")
	storage, err := persistence.NewFile(globals.Config.CLI.StorageDir)
	require.NoError(t, err)
	require.NoError(t, storage.Set(context.Background(), persistence.TokenKey, "garbage"))

	require.NoError(t, (&WhoamiCmd{}).Run(context.Background(), globals))
	assert.Contains(t, out.String(), "has been cleared")

	_, ok, err := storage.Get(context.Background(), persistence.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBicyclesNeedsAdmin(t *testing.T) {
	ctx := context.Background()
	globals, out := newGlobals(t, mint(t, "root", "ADMIN"))

	err := (&BicyclesCmd{}).Run(ctx, globals)
	require.Error(t, err)

	require.NoError(t, (&LoginCmd{Username: "root", Password: "pw"}).Run(ctx, globals))
	out.Reset()
	require.NoError(t, (&BicyclesCmd{}).Run(ctx, globals))
	assert.Contains(t, out.String(), "Gazelle")
	assert.Contains(t, out.String(), "4.50")
}

func TestRentalListsAvailableBicycles(t *testing.T) {
	ctx := context.Background()
	globals, out := newGlobals(t, mint(t, "alice", "CUSTOMER"))

	require.NoError(t, (&LoginCmd{Username: "alice", Password: "pw"}).Run(ctx, globals))
	out.Reset()
	require.NoError(t, (&RentalCmd{}).Run(ctx, globals))
	assert.Contains(t, out.String(), "No open rental")
	assert.Contains(t, out.String(), "b1")

	require.Error(t, (&BicyclesCmd{}).Run(ctx, globals))
}
