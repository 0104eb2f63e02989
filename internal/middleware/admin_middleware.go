package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
)

// AdminOnly gates admin routes. It must run after Auth, which sets the role.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied. Admins only.",
			})
		}
		return c.Next()
	}
}
