package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/services"
)

type AdminHandler struct {
	stats *services.StatsService
}

func NewAdminHandler(stats *services.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats feeds the admin dashboard tiles.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"stats": overview})
}
