package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// Fiber locals keys shared by the session middleware and the handlers.
const (
	// SessionLocalsKey holds the request's session.
	SessionLocalsKey = "bikehub_session"
	// NavigationLocalsKey holds the request's *Recorder.
	NavigationLocalsKey = "bikehub_navigation"
	// CSRFLocalsKey holds the form token views must echo back on POST.
	CSRFLocalsKey = "bikehub_csrf"
)

// RequireRole gates a route group on an exact role match. Denied requests are
// redirected to the login view.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		source, _ := c.Locals(SessionLocalsKey).(RoleSource)

		target := LoginPath
		gate := NewGate(source, NavigatorFunc(func(path string) { target = path }))
		if gate.Allow(required) {
			return c.Next()
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}
}
