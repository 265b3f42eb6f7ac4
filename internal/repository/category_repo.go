package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/model"
)

// CategoryCount is a category row joined with the number of products
// referencing it.
type CategoryCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	FindAll(search string) ([]CategoryCount, error)
	Search(term string, limit int) ([]CategoryCount, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *categoryRepo) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "name = ?", name).Error
	return &category, err
}

func (r *categoryRepo) FindAll(search string) ([]CategoryCount, error) {
	return r.withCounts(search, 0)
}

func (r *categoryRepo) Search(term string, limit int) ([]CategoryCount, error) {
	return r.withCounts(term, limit)
}

func (r *categoryRepo) withCounts(search string, limit int) ([]CategoryCount, error) {
	results := []CategoryCount{}
	q := r.db.Model(&model.Category{}).
		Select("categories.id, categories.name, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name ASC")
	if search != "" {
		q = q.Where("LOWER(categories.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&results).Error
	return results, err
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}
