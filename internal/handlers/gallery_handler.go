package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
	"github.com/arvindpj/treknest/internal/services"
)

type GalleryHandler struct {
	svc *services.GalleryService
}

func NewGalleryHandler(svc *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	images, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"images": images})
}

func (h *GalleryHandler) Get(c *fiber.Ctx) error {
	img, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"image": img})
}

func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var img models.GalleryImage
	if err := c.BodyParser(&img); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.svc.Create(c.Context(), &img); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Image added", "image": img})
}

func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body")
	}

	img, err := h.svc.Update(c.Context(), c.Params("id"), fields)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Image updated", "image": img})
}

// Delete removes the record and its object-store asset.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Image removed"})
}
