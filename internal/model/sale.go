package model

import "time"

// Sale records an outbound stock movement. Creating one decrements the
// referenced product's quantity in the same transaction.
type Sale struct {
	BaseModel
	ProductID uint      `gorm:"index;not null" json:"product_id" validate:"required,gt=0"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	SalePrice float64   `gorm:"not null" json:"sale_price" validate:"gte=0"`
	Customer  string    `gorm:"type:varchar(255)" json:"customer"`
	SoldAt    time.Time `gorm:"index;not null" json:"sold_at"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`

	Product Product `json:"product" validate:"-"`
	User    *User   `json:"user,omitempty" validate:"-"`
}
