package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/apperr"
)

// Every endpoint answers with the same envelope: {"success":true,"data":...}
// or {"success":false,"error":"..."}.

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInsufficientStock:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindDuplicateKey, apperr.KindReferentialConflict:
		return fiber.StatusConflict
	case apperr.KindInvalidCredentials:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
