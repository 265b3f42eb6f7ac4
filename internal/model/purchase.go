package model

import "time"

// Purchase records an inbound stock movement. Creating one increments the
// referenced product's quantity in the same transaction.
type Purchase struct {
	BaseModel
	ProductID   uint      `gorm:"index;not null" json:"product_id" validate:"required,gt=0"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	CostPrice   float64   `gorm:"not null" json:"cost_price" validate:"gte=0"`
	Supplier    string    `gorm:"type:varchar(255);not null" json:"supplier" validate:"required"`
	PurchasedAt time.Time `gorm:"index;not null" json:"purchased_at"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`

	Product Product `json:"product" validate:"-"`
	User    *User   `json:"user,omitempty" validate:"-"`
}
