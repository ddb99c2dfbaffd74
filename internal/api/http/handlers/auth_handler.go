package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/animal-catalog/internal/api/dto"
	"github.com/spec-kit/animal-catalog/internal/auth"
	"github.com/spec-kit/animal-catalog/internal/service"
	apperrors "github.com/spec-kit/animal-catalog/pkg/util/errorutil"
)

const (
	missingCredentialsMessage = "Username and password required"
	missingSecretMessage      = "Missing JWT_SECRET on server"
	passwordTooLongMessage    = "Password must be at most 72 bytes"
)

// AuthHandler exposes login, registration and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	res, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	return c.JSON(dto.LoginResponse{OK: true, Token: res.Token, User: res.Identity})
}

// Register handles POST /api/customers/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	if _, err := h.auth.RegisterCustomer(c.UserContext(), req.Username, req.Password); err != nil {
		return mapAuthError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{OK: true})
}

// Session handles GET /api/session and /api/admin/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(dto.SessionResponse{OK: true, User: principal.Identity, ExpiresAt: principal.ExpiresAt})
}

func parseCredentials(c *fiber.Ctx) (dto.CredentialsRequest, error) {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError(missingCredentialsMessage, nil)
	}
	if err := req.Validate(); err != nil {
		return req, apperrors.NewValidationError(missingCredentialsMessage, map[string]any{"fields": err.Error()})
	}
	return req, nil
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return apperrors.NewValidationError(missingCredentialsMessage, nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewUnauthorized(service.InvalidCredentialsMessage)
	case errors.Is(err, service.ErrSigningUnavailable):
		return apperrors.NewConfigurationError(missingSecretMessage, err)
	case errors.Is(err, service.ErrPasswordTooLong):
		return apperrors.NewValidationError(passwordTooLongMessage, nil)
	case errors.Is(err, service.ErrUsernameTaken):
		return apperrors.NewConflict("Username already exists", nil)
	default:
		return apperrors.NewInternalError(err)
	}
}
