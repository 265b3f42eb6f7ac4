package model

type Product struct {
	BaseModel
	Name       string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Brand      string  `gorm:"type:varchar(255);not null" json:"brand" validate:"required"`
	CostPrice  float64 `gorm:"not null;default:0" json:"cost_price" validate:"gte=0"`
	SalePrice  float64 `gorm:"not null;default:0" json:"sale_price" validate:"gte=0"`
	Quantity   int     `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	MinStock   int     `gorm:"not null;default:0" json:"min_stock" validate:"gte=0"`
	CategoryID uint    `gorm:"index;not null" json:"category_id" validate:"required,gt=0"`

	Category  Category   `json:"category" validate:"-"`
	Sales     []Sale     `json:"sales,omitempty" validate:"-"`
	Purchases []Purchase `json:"purchases,omitempty" validate:"-"`
}
