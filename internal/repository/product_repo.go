package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindByIDWithCategory(id uint) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindAll(search string, categoryID uint) ([]model.Product, error)
	FindAvailable() ([]model.Product, error)
	Search(term string, limit int) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	// AdjustQuantity shifts the stored quantity by delta inside the caller's
	// transaction; delta is negative for sales.
	AdjustQuantity(tx *gorm.DB, id uint, delta int) error
	CountByCategory(categoryID uint) (int64, error)
	CountLowStock() (int64, error)
	SumCostPrice() (float64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByIDWithCategory(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) FindAll(search string, categoryID uint) ([]model.Product, error) {
	products := []model.Product{}
	q := r.db.Preload("Category").Order("created_at DESC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern, pattern)
	}
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindAvailable() ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Preload("Category").
		Where("quantity > 0").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Search(term string, limit int) ([]model.Product, error) {
	products := []model.Product{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Preload("Category").
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, id).Error
}

func (r *productRepo) AdjustQuantity(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *productRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("quantity <= min_stock").Count(&count).Error
	return count, err
}

func (r *productRepo) SumCostPrice() (float64, error) {
	var total float64
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(cost_price), 0)").
		Scan(&total).Error
	return total, err
}
