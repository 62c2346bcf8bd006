package persistence

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieApp(key CookieKey) *fiber.App {
	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		s := NewCookie(c, key, false)
		if err := s.Set(c.UserContext(), TokenKey, c.Query("v")); err != nil {
			return err
		}
		v, _, err := s.Get(c.UserContext(), TokenKey)
		if err != nil {
			return err
		}
		return c.SendString(v)
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		v, ok, err := NewCookie(c, key, false).Get(c.UserContext(), TokenKey)
		if err != nil {
			return c.Status(fiber.StatusConflict).SendString(err.Error())
		}
		if !ok {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.SendString(v)
	})
	app.Post("/delete", func(c *fiber.Ctx) error {
		s := NewCookie(c, key, false)
		if err := s.Delete(c.UserContext(), TokenKey); err != nil {
			return err
		}
		_, ok, _ := s.Get(c.UserContext(), TokenKey)
		if ok {
			return c.SendString("still there")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func sealedCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == TokenKey {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", TokenKey)
	return nil
}

func TestCookie_RoundTrip(t *testing.T) {
	app := cookieApp(DeriveCookieKey("secret"))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set?v=tok123", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ck := sealedCookie(t, resp)
	assert.True(t, ck.HttpOnly)
	assert.NotContains(t, ck.Value, "tok123")

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: TokenKey, Value: ck.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCookie_Missing(t *testing.T) {
	app := cookieApp(DeriveCookieKey("secret"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCookie_WrongKeyIsCorrupt(t *testing.T) {
	resp, err := cookieApp(DeriveCookieKey("one")).Test(httptest.NewRequest(http.MethodPost, "/set?v=tok", nil))
	require.NoError(t, err)
	ck := sealedCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: TokenKey, Value: ck.Value})
	resp, err = cookieApp(DeriveCookieKey("two")).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: TokenKey, Value: "garbage"})
	resp, err = cookieApp(DeriveCookieKey("one")).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCookie_DeleteExpiresCookie(t *testing.T) {
	app := cookieApp(DeriveCookieKey("secret"))

	req := httptest.NewRequest(http.MethodPost, "/delete", nil)
	req.AddCookie(&http.Cookie{Name: TokenKey, Value: "whatever"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	ck := sealedCookie(t, resp)
	assert.Empty(t, ck.Value)
}
