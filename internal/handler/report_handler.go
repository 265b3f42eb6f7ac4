package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/ichaoui56/service-stock2/internal/service"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// ExportTransactions streams the requested ledger as a CSV attachment.
func (h *ReportHandler) ExportTransactions(c *fiber.Ctx) error {
	kind := c.Query("type", "sales")

	var buf bytes.Buffer
	var err error
	switch kind {
	case "sales":
		err = h.service.ExportSales(&buf)
	case "purchases":
		err = h.service.ExportPurchases(&buf)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Unknown report type"})
	}
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+kind+`.csv"`)
	return c.Send(buf.Bytes())
}
