package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ichaoui56/service-stock2/internal/apperr"
	"github.com/ichaoui56/service-stock2/internal/repository"
)

// ReportService renders ledger transactions as downloadable delimited text.
type ReportService interface {
	ExportSales(w io.Writer) error
	ExportPurchases(w io.Writer) error
}

type reportService struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

func NewReportService(saleRepo repository.SaleRepository, purchaseRepo repository.PurchaseRepository) ReportService {
	return &reportService{saleRepo: saleRepo, purchaseRepo: purchaseRepo}
}

func (s *reportService) ExportSales(w io.Writer) error {
	sales, err := s.saleRepo.FindAll("")
	if err != nil {
		return apperr.Failed("Failed to export sales", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Product", "SKU", "Quantity", "Unit Price", "Total", "Customer", "Recorded By"}); err != nil {
		return apperr.Failed("Failed to export sales", err)
	}
	for _, sale := range sales {
		recordedBy := ""
		if sale.User != nil {
			recordedBy = sale.User.Name
		}
		row := []string{
			sale.SoldAt.Format("2006-01-02 15:04"),
			sale.Product.Name,
			sale.Product.SKU,
			strconv.Itoa(sale.Quantity),
			formatAmount(sale.SalePrice),
			formatAmount(sale.SalePrice * float64(sale.Quantity)),
			sale.Customer,
			recordedBy,
		}
		if err := cw.Write(row); err != nil {
			return apperr.Failed("Failed to export sales", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperr.Failed("Failed to export sales", err)
	}
	return nil
}

func (s *reportService) ExportPurchases(w io.Writer) error {
	purchases, err := s.purchaseRepo.FindAll("")
	if err != nil {
		return apperr.Failed("Failed to export purchases", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Product", "SKU", "Quantity", "Unit Cost", "Total", "Supplier", "Recorded By"}); err != nil {
		return apperr.Failed("Failed to export purchases", err)
	}
	for _, purchase := range purchases {
		recordedBy := ""
		if purchase.User != nil {
			recordedBy = purchase.User.Name
		}
		row := []string{
			purchase.PurchasedAt.Format("2006-01-02 15:04"),
			purchase.Product.Name,
			purchase.Product.SKU,
			strconv.Itoa(purchase.Quantity),
			formatAmount(purchase.CostPrice),
			formatAmount(purchase.CostPrice * float64(purchase.Quantity)),
			purchase.Supplier,
			recordedBy,
		}
		if err := cw.Write(row); err != nil {
			return apperr.Failed("Failed to export purchases", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperr.Failed("Failed to export purchases", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
