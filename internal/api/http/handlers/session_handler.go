package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/api/dto"
	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// SessionHandler serves the login, signup and logout views.
type SessionHandler struct{}

// NewSessionHandler constructs handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Home handles GET / by sending the user to the landing view of their role.
func (h *SessionHandler) Home(c *fiber.Ctx) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}
	return c.Redirect(auth.HomePath(holder.Role()), fiber.StatusFound)
}

// LoginPage handles GET /login.
func (h *SessionHandler) LoginPage(c *fiber.Ctx) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}
	if holder.Role() != domain.RoleGuest {
		return c.Redirect(auth.HomePath(holder.Role()), fiber.StatusFound)
	}
	return render(c, fiber.StatusOK, "login", fiber.Map{"Title": "Log in", "Username": ""})
}

// Login handles POST /login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}

	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	username := strings.TrimSpace(form.Username)
	data := fiber.Map{"Title": "Log in", "Username": username}

	if username == "" || form.Password == "" {
		data["Error"] = "Username and password are required."
		return render(c, fiber.StatusUnprocessableEntity, "login", data)
	}
	if !holder.Login(c.UserContext(), username, form.Password) {
		data["Error"] = "Login failed. Check your username and password."
		return render(c, fiber.StatusUnauthorized, "login", data)
	}
	return c.Redirect(auth.HomePath(holder.Role()), fiber.StatusSeeOther)
}

// SignupPage handles GET /signup.
func (h *SessionHandler) SignupPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "signup", fiber.Map{"Title": "Sign up", "Form": dto.SignupForm{}})
}

// Signup handles POST /signup.
func (h *SessionHandler) Signup(c *fiber.Ctx) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}

	var form dto.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	data := fiber.Map{"Title": "Sign up", "Form": form}

	if form.Username == "" || form.Email == "" || form.Password == "" {
		data["Error"] = "Username, email and password are required."
		return render(c, fiber.StatusUnprocessableEntity, "signup", data)
	}
	if !holder.Signup(c.UserContext(), form.Username, form.Email, form.Password, form.PhoneNumber) {
		data["Error"] = "Registration failed. Please try again."
		return render(c, fiber.StatusUnprocessableEntity, "signup", data)
	}
	return redirectWithNotice(c, auth.LoginPath, "Account created. You can now log in.")
}

// Logout handles POST /logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}
	holder.Logout(c.UserContext())
	return followNavigation(c, auth.LoginPath)
}
