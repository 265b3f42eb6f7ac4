package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input service.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	user, err := h.service.SignUp(input)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input service.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	resp, err := h.service.Login(input)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, resp)
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	user, err := h.service.ValidateToken(input.Token)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}
