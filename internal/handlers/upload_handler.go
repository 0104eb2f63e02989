package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/services"
)

type UploadHandler struct {
	svc *services.UploadService
}

func NewUploadHandler(svc *services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload accepts up to services.MaxUploadFiles images under the multipart
// field "product" and returns their URLs in upload order.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Invalid multipart form")
	}

	urls, err := h.svc.UploadBatch(c.Context(), form.File["product"])
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Upload complete", "image_urls": urls})
}
