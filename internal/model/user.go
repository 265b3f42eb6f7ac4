package model

import "golang.org/x/crypto/bcrypt"

const RoleUser = "USER"

type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"type:varchar(50);not null;default:USER" json:"role"`

	// TokenVersion rotates on every login; a token carrying a stale version
	// is rejected, so only the latest session stays valid.
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"`
}

// SetPassword hashes and stores the plaintext password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// UserResponse is the API shape of a user, without credentials.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
