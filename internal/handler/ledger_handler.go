package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/middleware"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/service"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

func (h *LedgerHandler) CreateSale(c *fiber.Ctx) error {
	var req model.Sale
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	sale, err := h.service.CreateSale(&req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, sale)
}

func (h *LedgerHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetSales(c.Query("search"))
	if err != nil {
		return respondData(c, fiber.StatusOK, []model.Sale{})
	}
	return respondData(c, fiber.StatusOK, sales)
}

func (h *LedgerHandler) CreatePurchase(c *fiber.Ctx) error {
	var req model.Purchase
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	purchase, err := h.service.CreatePurchase(&req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, purchase)
}

func (h *LedgerHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetPurchases(c.Query("search"))
	if err != nil {
		return respondData(c, fiber.StatusOK, []model.Purchase{})
	}
	return respondData(c, fiber.StatusOK, purchases)
}
