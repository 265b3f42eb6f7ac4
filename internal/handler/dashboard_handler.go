package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, h.service.GetDashboardData())
}

// GlobalSearch degrades to empty result sets on storage failure, matching the
// availability-first behavior of the other read endpoints.
func (h *DashboardHandler) GlobalSearch(c *fiber.Ctx) error {
	results, err := h.service.GlobalSearch(c.Query("q"))
	if err != nil {
		return respondData(c, fiber.StatusOK, service.SearchResults{
			Products:   []model.Product{},
			Sales:      []model.Sale{},
			Purchases:  []model.Purchase{},
			Categories: []repository.CategoryCount{},
		})
	}
	return respondData(c, fiber.StatusOK, results)
}
