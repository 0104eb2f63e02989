package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
	"github.com/arvindpj/treknest/internal/services"
)

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit is the public storefront contact form.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.Submit(c.Context(), &contact); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Inquiry received", "contact": contact})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"contacts": contacts})
}

func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	var req models.ContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.UpdateStatus(c.Context(), c.Params("id"), req); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Contact updated"})
}

func (h *ContactHandler) Remove(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.Delete(c.Context(), req.ID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Contact removed"})
}
