package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
)

// Bind attaches h to the request so that handlers and auth.RequireRole see it.
func Bind(c *fiber.Ctx, h *Holder) {
	c.Locals(auth.SessionLocalsKey, h)
}

// FromCtx returns the holder bound to the request.
func FromCtx(c *fiber.Ctx) (*Holder, bool) {
	h, ok := c.Locals(auth.SessionLocalsKey).(*Holder)
	return h, ok && h != nil
}
