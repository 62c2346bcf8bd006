package handlers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/session"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

var errNoSession = errors.New("no session bound to request")

func holderFor(c *fiber.Ctx) (*session.Holder, error) {
	h, ok := session.FromCtx(c)
	if !ok {
		return nil, util.NewInternalError(errNoSession)
	}
	return h, nil
}

// render fills the values every view expects and renders view inside the layout.
func render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if h, ok := session.FromCtx(c); ok {
		data["Session"] = h.Snapshot()
	} else {
		data["Session"] = domain.GuestSession()
	}
	data["CSRF"] = csrfToken(c)
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = c.Query("notice")
	}
	return c.Status(status).Render(view, data)
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals(auth.CSRFLocalsKey).(string)
	return token
}

func redirectWithNotice(c *fiber.Ctx, path, notice string) error {
	return c.Redirect(path+"?notice="+url.QueryEscape(notice), fiber.StatusSeeOther)
}

// followNavigation redirects to wherever the session asked to navigate, or to fallback.
func followNavigation(c *fiber.Ctx, fallback string) error {
	if rec, ok := c.Locals(auth.NavigationLocalsKey).(*auth.Recorder); ok && rec.Target() != "" {
		return c.Redirect(rec.Target(), fiber.StatusSeeOther)
	}
	return c.Redirect(fallback, fiber.StatusSeeOther)
}

func errorMessage(err error) string {
	return util.ToDomainError(err).Message
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, util.NewValidationError("Hourly price must be a number.", map[string]any{"hourlyPrice": raw})
	}
	return price, nil
}
