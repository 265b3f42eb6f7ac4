package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/apperr"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/internal/ws"
	"github.com/ichaoui56/service-stock2/pkg/validator"
)

// InventoryService owns product and category CRUD, including the duplicate-key
// and referential-delete guards.
type InventoryService interface {
	CreateProduct(req *model.Product, actor model.Identity) (*model.Product, error)
	UpdateProduct(id uint, req *model.Product, actor model.Identity) (*model.Product, error)
	DeleteProduct(id uint, actor model.Identity) error
	GetProducts(search string, categoryID uint) ([]model.Product, error)
	GetAvailableProducts() ([]model.Product, error)

	CreateCategory(req *model.Category, actor model.Identity) (*model.Category, error)
	UpdateCategory(id uint, req *model.Category, actor model.Identity) (*model.Category, error)
	DeleteCategory(id uint, actor model.Identity) error
	GetCategories(search string) ([]repository.CategoryCount, error)
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	hub          *ws.Hub
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		hub:          hub,
	}
}

func (s *inventoryService) publish(action string, payload interface{}, actor model.Identity, msg string) {
	if s.hub == nil {
		return
	}
	go s.hub.Publish(ws.Event{
		Type:    "inventory_update",
		Action:  action,
		Payload: payload,
		Actor:   actor,
		Message: msg,
	})
}

func validateInput(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return apperr.Validation(errs[0].Message)
	}
	return nil
}

func (s *inventoryService) CreateProduct(req *model.Product, actor model.Identity) (*model.Product, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindBySKU(req.SKU); err == nil {
		return nil, apperr.DuplicateKey("SKU already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Failed("Failed to create product", err)
	}

	if err := s.productRepo.Create(req); err != nil {
		return nil, apperr.Failed("Failed to create product", err)
	}

	product, err := s.productRepo.FindByIDWithCategory(req.ID)
	if err != nil {
		return nil, apperr.Failed("Failed to create product", err)
	}

	s.publish("product_created", product, actor,
		fmt.Sprintf("%s created product '%s'", actor.Name, product.Name))
	return product, nil
}

func (s *inventoryService) UpdateProduct(id uint, req *model.Product, actor model.Identity) (*model.Product, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Failed("Failed to update product", err)
	}

	if owner, err := s.productRepo.FindBySKU(req.SKU); err == nil && owner.ID != id {
		return nil, apperr.DuplicateKey("SKU already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Failed("Failed to update product", err)
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Brand = req.Brand
	existing.CostPrice = req.CostPrice
	existing.SalePrice = req.SalePrice
	existing.Quantity = req.Quantity
	existing.MinStock = req.MinStock
	existing.CategoryID = req.CategoryID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, apperr.Failed("Failed to update product", err)
	}

	product, err := s.productRepo.FindByIDWithCategory(id)
	if err != nil {
		return nil, apperr.Failed("Failed to update product", err)
	}

	s.publish("product_updated", product, actor,
		fmt.Sprintf("%s updated product '%s'", actor.Name, product.Name))
	return product, nil
}

func (s *inventoryService) DeleteProduct(id uint, actor model.Identity) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Failed("Failed to delete product", err)
	}

	saleCount, err := s.saleRepo.CountByProduct(id)
	if err != nil {
		return apperr.Failed("Failed to delete product", err)
	}
	purchaseCount, err := s.purchaseRepo.CountByProduct(id)
	if err != nil {
		return apperr.Failed("Failed to delete product", err)
	}
	if saleCount > 0 || purchaseCount > 0 {
		return apperr.ReferentialConflict("Cannot delete product with existing transactions")
	}

	if err := s.productRepo.Delete(id); err != nil {
		return apperr.Failed("Failed to delete product", err)
	}

	s.publish("product_deleted", product, actor,
		fmt.Sprintf("%s deleted product '%s'", actor.Name, product.Name))
	return nil
}

func (s *inventoryService) GetProducts(search string, categoryID uint) ([]model.Product, error) {
	return s.productRepo.FindAll(search, categoryID)
}

func (s *inventoryService) GetAvailableProducts() ([]model.Product, error) {
	return s.productRepo.FindAvailable()
}

func (s *inventoryService) CreateCategory(req *model.Category, actor model.Identity) (*model.Category, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByName(req.Name); err == nil {
		return nil, apperr.DuplicateKey("Category already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Failed("Failed to create category", err)
	}

	if err := s.categoryRepo.Create(req); err != nil {
		return nil, apperr.Failed("Failed to create category", err)
	}

	s.publish("category_created", req, actor,
		fmt.Sprintf("%s created category '%s'", actor.Name, req.Name))
	return req, nil
}

func (s *inventoryService) UpdateCategory(id uint, req *model.Category, actor model.Identity) (*model.Category, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, apperr.Failed("Failed to update category", err)
	}

	if owner, err := s.categoryRepo.FindByName(req.Name); err == nil && owner.ID != id {
		return nil, apperr.DuplicateKey("Category already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Failed("Failed to update category", err)
	}

	existing.Name = req.Name
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, apperr.Failed("Failed to update category", err)
	}

	s.publish("category_updated", existing, actor,
		fmt.Sprintf("%s updated category '%s'", actor.Name, existing.Name))
	return existing, nil
}

func (s *inventoryService) DeleteCategory(id uint, actor model.Identity) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return apperr.Failed("Failed to delete category", err)
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return apperr.Failed("Failed to delete category", err)
	}
	if count > 0 {
		return apperr.ReferentialConflict("Cannot delete category with existing products")
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return apperr.Failed("Failed to delete category", err)
	}

	s.publish("category_deleted", category, actor,
		fmt.Sprintf("%s deleted category '%s'", actor.Name, category.Name))
	return nil
}

func (s *inventoryService) GetCategories(search string) ([]repository.CategoryCount, error) {
	return s.categoryRepo.FindAll(search)
}
