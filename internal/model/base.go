package model

import "time"

// BaseModel carries the numeric surrogate key and audit timestamps shared by
// every entity.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the resolved authenticated user passed explicitly into every
// operation that needs one. The auth middleware builds it from verified JWT
// claims; nothing reads session state from ambient globals.
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
