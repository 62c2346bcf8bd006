package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/config"
)

const (
	// CSRFCookie carries the double-submit token.
	CSRFCookie = "bikehub_csrf"
	// CSRFField is the form field every POST form echoes the token in.
	CSRFField = "_csrf"
)

// CSRFMiddleware rejects state-changing requests whose form token does not
// match the CSRF cookie.
func CSRFMiddleware(cfg config.StorageConfig) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFField,
		CookieName:     CSRFCookie,
		CookieSecure:   cfg.SecureCookies,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		ContextKey:     auth.CSRFLocalsKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.NewError(fiber.StatusForbidden, "Your form expired. Reload the page and try again.")
		},
	})
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals(auth.CSRFLocalsKey).(string)
	return token
}
