package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/middleware"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/internal/service"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(&req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, product)
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
	}

	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(id, &req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, product)
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id, middleware.IdentityFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// GetProducts degrades to an empty list on storage failure; the listing pages
// stay usable even when a query fails.
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)

	products, err := h.service.GetProducts(search, uint(categoryID))
	if err != nil {
		return respondData(c, fiber.StatusOK, []model.Product{})
	}
	return respondData(c, fiber.StatusOK, products)
}

func (h *InventoryHandler) GetAvailableProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAvailableProducts()
	if err != nil {
		return respondData(c, fiber.StatusOK, []model.Product{})
	}
	return respondData(c, fiber.StatusOK, products)
}

func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(&req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, category)
}

func (h *InventoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid category ID"})
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	category, err := h.service.UpdateCategory(id, &req, middleware.IdentityFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, category)
}

func (h *InventoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(id, middleware.IdentityFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(c.Query("search"))
	if err != nil {
		return respondData(c, fiber.StatusOK, []repository.CategoryCount{})
	}
	return respondData(c, fiber.StatusOK, categories)
}
