package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/models"
	"github.com/arvindpj/treknest/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, token, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, token, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	user, err := h.svc.Me(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.svc.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Profile updated", "user": user})
}

// UpdateUser is the admin edit of an arbitrary account.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.svc.UpdateUser(c.Context(), c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "User updated", "user": user})
}
