package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/apperr"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/internal/ws"
)

// LedgerService records sales and purchases. These are the only two
// multi-statement transactions in the system: the movement row and the stock
// adjustment commit together or not at all.
type LedgerService interface {
	CreateSale(req *model.Sale, actor model.Identity) (*model.Sale, error)
	CreatePurchase(req *model.Purchase, actor model.Identity) (*model.Purchase, error)
	GetSales(search string) ([]model.Sale, error)
	GetPurchases(search string) ([]model.Purchase, error)
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	db           *gorm.DB
	hub          *ws.Hub
}

func NewLedgerService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	db *gorm.DB,
	hub *ws.Hub,
) LedgerService {
	return &ledgerService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		db:           db,
		hub:          hub,
	}
}

func (s *ledgerService) publish(action string, payload interface{}, actor model.Identity, msg string) {
	if s.hub == nil {
		return
	}
	go s.hub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  action,
		Payload: payload,
		Actor:   actor,
		Message: msg,
	})
}

func (s *ledgerService) CreateSale(req *model.Sale, actor model.Identity) (*model.Sale, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Product not found")
			}
			return err
		}

		if product.Quantity < req.Quantity {
			return apperr.InsufficientStock("Insufficient stock")
		}

		req.SoldAt = time.Now()
		req.UserID = actor.UserID
		if err := s.saleRepo.Create(tx, req); err != nil {
			return err
		}
		return s.productRepo.AdjustQuantity(tx, product.ID, -req.Quantity)
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Failed("Failed to create sale", err)
	}

	sale, err := s.saleRepo.FindByID(req.ID)
	if err != nil {
		return nil, apperr.Failed("Failed to create sale", err)
	}

	s.publish("sale_recorded", sale, actor,
		fmt.Sprintf("%s sold %d x '%s'", actor.Name, sale.Quantity, sale.Product.Name))
	return sale, nil
}

func (s *ledgerService) CreatePurchase(req *model.Purchase, actor model.Identity) (*model.Purchase, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Product not found")
			}
			return err
		}

		req.PurchasedAt = time.Now()
		req.UserID = actor.UserID
		if err := s.purchaseRepo.Create(tx, req); err != nil {
			return err
		}
		return s.productRepo.AdjustQuantity(tx, product.ID, req.Quantity)
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Failed("Failed to create purchase", err)
	}

	purchase, err := s.purchaseRepo.FindByID(req.ID)
	if err != nil {
		return nil, apperr.Failed("Failed to create purchase", err)
	}

	s.publish("purchase_recorded", purchase, actor,
		fmt.Sprintf("%s received %d x '%s' from %s", actor.Name, purchase.Quantity, purchase.Product.Name, purchase.Supplier))
	return purchase, nil
}

func (s *ledgerService) GetSales(search string) ([]model.Sale, error) {
	return s.saleRepo.FindAll(search)
}

func (s *ledgerService) GetPurchases(search string) ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll(search)
}
