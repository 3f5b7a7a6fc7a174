package handlers

import (
	"errors"
	"strings"

	applog "ajir/internal/log"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	name, nameOK := validate.Required(req.Name)
	email, emailOK := validate.Email(req.Email)
	if !nameOK || !emailOK || strings.TrimSpace(req.Password) == "" {
		applog.Security(c, "auth.signup.fail", map[string]any{"reason": "missing_fields"})
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	userID, err := h.Auth.Signup(name, email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			applog.Security(c, "auth.signup.fail", map[string]any{"email": email, "reason": "duplicate"})
			return message(c, fiber.StatusBadRequest, "Email already registered")
		}
		applog.Error(c, "auth.signup.fail", err, nil)
		return serverError(c)
	}

	applog.Audit(c, "auth.signup", map[string]any{"user_id": userID})
	return c.JSON(fiber.Map{"message": "Signup successful", "userId": userID})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := h.Auth.Login(email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotFound):
			applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "unknown_email"})
			return message(c, fiber.StatusBadRequest, "Email not found")
		case errors.Is(err, services.ErrBadPassword):
			applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password"})
			return message(c, fiber.StatusBadRequest, "Incorrect password")
		default:
			applog.Error(c, "auth.login.fail", err, nil)
			return serverError(c)
		}
	}

	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	// Minimal projection; the hash never leaves the service.
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    fiber.Map{"id": u.ID, "name": u.Name, "email": u.Email},
	})
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /admin-login
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	if err := h.Auth.AdminLogin(strings.TrimSpace(req.Username), req.Password); err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			applog.Security(c, "auth.admin.fail", map[string]any{"username": req.Username})
			return message(c, fiber.StatusBadRequest, "Invalid credentials")
		}
		applog.Error(c, "auth.admin.fail", err, nil)
		return serverError(c)
	}

	applog.Audit(c, "auth.admin.success", nil)
	return c.JSON(fiber.Map{"message": "Admin login successful"})
}
