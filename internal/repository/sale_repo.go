package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/model"
)

// SaleTotal is the summed sale price of every sale sharing one sold_at
// moment, the grouping the monthly chart is built from.
type SaleTotal struct {
	SoldAt time.Time `json:"sold_at"`
	Total  float64   `json:"total"`
}

// ProductSalesStat aggregates a product's pricing with its cumulative units
// sold, for the profit analysis view.
type ProductSalesStat struct {
	Product   string  `json:"product"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	UnitsSold int     `json:"units_sold"`
}

type SaleRepository interface {
	// Create inserts within the caller's transaction so the stock decrement
	// commits or rolls back with the row.
	Create(tx *gorm.DB, sale *model.Sale) error
	FindByID(id uint) (*model.Sale, error)
	FindAll(search string) ([]model.Sale, error)
	FindRecent(limit int) ([]model.Sale, error)
	Search(term string, limit int) ([]model.Sale, error)
	CountByProduct(productID uint) (int64, error)
	SumSalePrice() (float64, error)
	SumSalePriceSince(t time.Time) (float64, error)
	TotalsBySoldAt(limit int) ([]SaleTotal, error)
	TopProducts(limit int) ([]ProductSalesStat, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Product.Category").Preload("User").First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) FindAll(search string) ([]model.Sale, error) {
	sales := []model.Sale{}
	q := r.db.Preload("Product.Category").Preload("User").Order("sold_at DESC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Joins("JOIN products ON products.id = sales.product_id").
			Where("LOWER(sales.customer) LIKE ? OR LOWER(products.name) LIKE ? OR LOWER(products.sku) LIKE ? OR LOWER(products.brand) LIKE ?",
				pattern, pattern, pattern, pattern)
	}
	err := q.Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindRecent(limit int) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := r.db.Preload("Product.Category").
		Order("sold_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Search(term string, limit int) ([]model.Sale, error) {
	sales := []model.Sale{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.Preload("Product.Category").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("LOWER(sales.customer) LIKE ? OR LOWER(products.name) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *saleRepo) SumSalePrice() (float64, error) {
	var total float64
	err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(sale_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *saleRepo) SumSalePriceSince(t time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Sale{}).
		Where("sold_at >= ?", t).
		Select("COALESCE(SUM(sale_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *saleRepo) TotalsBySoldAt(limit int) ([]SaleTotal, error) {
	totals := []SaleTotal{}
	err := r.db.Model(&model.Sale{}).
		Select("sold_at, COALESCE(SUM(sale_price), 0) AS total").
		Group("sold_at").
		Order("sold_at DESC").
		Limit(limit).
		Scan(&totals).Error
	return totals, err
}

func (r *saleRepo) TopProducts(limit int) ([]ProductSalesStat, error) {
	stats := []ProductSalesStat{}
	err := r.db.Model(&model.Product{}).
		Select("products.name AS product, products.cost_price, products.sale_price, COALESCE(SUM(sales.quantity), 0) AS units_sold").
		Joins("LEFT JOIN sales ON sales.product_id = products.id").
		Group("products.id, products.name, products.cost_price, products.sale_price").
		Order("COUNT(sales.id) DESC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}
