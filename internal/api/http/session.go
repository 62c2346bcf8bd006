package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/events"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/internal/session"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

// BrowserCookie identifies a browser when its storage lives server side.
const BrowserCookie = "bikehub_sid"

// StorageFactory returns the storage of the browser that sent the request.
type StorageFactory func(c *fiber.Ctx) persistence.Storage

// CookieStorage keeps each browser's storage in its own sealed cookies.
func CookieStorage(cfg config.StorageConfig) StorageFactory {
	key := persistence.DeriveCookieKey(cfg.Secret)
	return func(c *fiber.Ctx) persistence.Storage {
		return persistence.NewCookie(c, key, cfg.SecureCookies)
	}
}

// ScopedStorage partitions a shared backend by browser id.
func ScopedStorage(shared persistence.Storage, secureCookies bool) StorageFactory {
	return func(c *fiber.Ctx) persistence.Storage {
		return persistence.NewScoped(shared, BrowserID(c, secureCookies))
	}
}

// BrowserID returns the id carried by the browser cookie, issuing a new one
// when the cookie is missing or not a UUID.
func BrowserID(c *fiber.Ctx, secure bool) string {
	if id := c.Cookies(BrowserCookie); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     BrowserCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

// SessionConfig bundles what the session middleware needs.
type SessionConfig struct {
	Storage StorageFactory
	Auth    session.AuthAPI
	Codec   session.Decoder
	Events  events.Dispatcher
	Logger  *zap.Logger
}

// SessionMiddleware builds a session holder over the browser's storage for
// each request. If restoring the session asked for a navigation, the request
// is redirected there.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := &auth.Recorder{}
		holder, err := session.New(c.UserContext(), session.Dependencies{
			Storage:   cfg.Storage(c),
			Auth:      cfg.Auth,
			Codec:     cfg.Codec,
			Navigator: rec,
			Events:    cfg.Events,
			Logger:    cfg.Logger,
		})
		if err != nil {
			return util.NewInternalError(err)
		}

		session.Bind(c, holder)
		c.Locals(auth.NavigationLocalsKey, rec)
		c.SetUserContext(repository.WithTokenSource(c.UserContext(), holder))

		if target := rec.Target(); target != "" && c.Path() != target {
			return c.Redirect(target, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
