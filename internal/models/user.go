package models

import (
	"spendwise/internal/uuid"

	"gorm.io/gorm"
)

// User represents an identity merged on email. UserID never changes once minted.
type User struct {
	Base
	UserID  string  `gorm:"uniqueIndex;not null" json:"user_id"`
	Email   string  `gorm:"uniqueIndex;not null" json:"email"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
}

// BeforeCreate mints the public user id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewPrefixed(UserIDPrefix)
	}
	return nil
}
