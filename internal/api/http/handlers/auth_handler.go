package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-marketplace/internal/api/dto"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/pkg/errorutil"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return errorutil.NewValidationError("email and password required", nil)
	}

	user, session, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return errorutil.NewUnauthorized("invalid email or password")
	}
	if err != nil {
		return errorutil.NewInternalError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.ClearSession(c.UserContext())
	return c.SendStatus(http.StatusNoContent)
}
