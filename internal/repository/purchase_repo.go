package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/model"
)

type PurchaseRepository interface {
	// Create inserts within the caller's transaction so the stock increment
	// commits or rolls back with the row.
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindByID(id uint) (*model.Purchase, error)
	FindAll(search string) ([]model.Purchase, error)
	FindRecent(limit int) ([]model.Purchase, error)
	Search(term string, limit int) ([]model.Purchase, error)
	CountByProduct(productID uint) (int64, error)
	SumCostPrice() (float64, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindByID(id uint) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Product.Category").Preload("User").First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) FindAll(search string) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	q := r.db.Preload("Product.Category").Preload("User").Order("purchased_at DESC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Joins("JOIN products ON products.id = purchases.product_id").
			Where("LOWER(purchases.supplier) LIKE ? OR LOWER(products.name) LIKE ? OR LOWER(products.sku) LIKE ? OR LOWER(products.brand) LIKE ?",
				pattern, pattern, pattern, pattern)
	}
	err := q.Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindRecent(limit int) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	err := r.db.Preload("Product.Category").
		Order("purchased_at DESC").
		Limit(limit).
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Search(term string, limit int) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Preload("Product.Category").
		Joins("JOIN products ON products.id = purchases.product_id").
		Where("LOWER(purchases.supplier) LIKE ? OR LOWER(products.name) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Purchase{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *purchaseRepo) SumCostPrice() (float64, error) {
	var total float64
	err := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(cost_price), 0)").
		Scan(&total).Error
	return total, err
}
