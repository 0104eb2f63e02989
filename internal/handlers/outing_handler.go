package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
)

func (h *CatalogHandler) AddOuting(c *fiber.Ctx) error {
	var outing models.Outing
	if err := c.BodyParser(&outing); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.CreateOuting(c.Context(), &outing); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Outing added", "outing": outing})
}

func (h *CatalogHandler) ListOutings(c *fiber.Ctx) error {
	outings, err := h.svc.ListOutings(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"outings": outings})
}

func (h *CatalogHandler) GetOuting(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid outing id")
	}

	outing, err := h.svc.GetOuting(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"outing": outing})
}

func (h *CatalogHandler) UpdateOuting(c *fiber.Ctx) error {
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body")
	}
	id, found := intFromBody(fields, "id")
	if !found {
		return badRequest(c, "Missing outing id")
	}

	outing, err := h.svc.UpdateOuting(c.Context(), id, fields)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Outing updated", "outing": outing})
}

func (h *CatalogHandler) RemoveOuting(c *fiber.Ctx) error {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.DeleteOuting(c.Context(), req.ID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Outing removed"})
}
