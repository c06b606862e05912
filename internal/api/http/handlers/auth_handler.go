package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loads-service/internal/api/dto"
	"github.com/spec-kit/loads-service/internal/auth"
	"github.com/spec-kit/loads-service/internal/service"
	apperrors "github.com/spec-kit/loads-service/pkg/util"
)

const minPasswordLength = 8

// AuthHandler exposes the credential endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	token, exp, err := h.auth.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if len(req.Password) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 8 characters long", nil)
	}

	token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// UpdatePassword handles PUT /auth/update. Unlike the other auth endpoints
// this one sits behind the authorization gate.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password is required", nil)
	}

	if err := h.auth.UpdatePassword(c.UserContext(), principal.UserID, req.Email, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user updated successfully"})
}
