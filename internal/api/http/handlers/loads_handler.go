package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loads-service/internal/api/dto"
	"github.com/spec-kit/loads-service/internal/auth"
	"github.com/spec-kit/loads-service/internal/service"
	apperrors "github.com/spec-kit/loads-service/pkg/util"
)

// LoadsHandler manages the load collection endpoints.
type LoadsHandler struct {
	service *service.LoadService
}

// NewLoadsHandler constructs the handler.
func NewLoadsHandler(loadService *service.LoadService) *LoadsHandler {
	return &LoadsHandler{service: loadService}
}

// List handles GET /loads.
func (h *LoadsHandler) List(c *fiber.Ctx) error {
	loads, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loads})
}

// Get handles GET /loads/:id.
func (h *LoadsHandler) Get(c *fiber.Ctx) error {
	load, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": load})
}

// Create handles POST /loads.
func (h *LoadsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.LoadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	load, err := h.service.Create(c.UserContext(), principal.UserID, loadInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"message": "load created",
		"id":      load.ID.Hex(),
	}})
}

// Update handles PUT /loads/:id.
func (h *LoadsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.LoadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.service.Update(c.UserContext(), principal.UserID, c.Params("id"), loadInput(req)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "load updated"}})
}

// Delete handles DELETE /loads/:id.
func (h *LoadsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.UserContext(), principal.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "load deleted"}})
}

func loadInput(req dto.LoadRequest) service.LoadInput {
	return service.LoadInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		Product:     req.Product,
		Weight:      req.Weight,
		Type:        req.Type,
		Extra:       req.Extra,
	}
}
