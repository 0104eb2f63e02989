package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
	"github.com/arvindpj/treknest/internal/services"
)

// CatalogHandler serves the trek and outing listings. The outing methods
// live in outing_handler.go.
type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) AddTrek(c *fiber.Ctx) error {
	var trek models.Trek
	if err := c.BodyParser(&trek); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.CreateTrek(c.Context(), &trek); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Product added", "product": trek})
}

func (h *CatalogHandler) ListTreks(c *fiber.Ctx) error {
	treks, err := h.svc.ListTreks(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"products": treks})
}

func (h *CatalogHandler) GetTrek(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	trek, err := h.svc.GetTrek(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"product": trek})
}

// UpdateTrek takes the id inside the body alongside the fields to change.
func (h *CatalogHandler) UpdateTrek(c *fiber.Ctx) error {
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body")
	}
	id, found := intFromBody(fields, "id")
	if !found {
		return badRequest(c, "Missing product id")
	}

	trek, err := h.svc.UpdateTrek(c.Context(), id, fields)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Product updated", "product": trek})
}

func (h *CatalogHandler) RemoveTrek(c *fiber.Ctx) error {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.DeleteTrek(c.Context(), req.ID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Product removed"})
}
