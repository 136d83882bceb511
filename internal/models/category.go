package models

import (
	"spendwise/internal/uuid"

	"gorm.io/gorm"
)

// Category is a named, colored label owned by one user.
type Category struct {
	Base
	CategoryID   string `gorm:"uniqueIndex;not null" json:"category_id"`
	UserID       string `gorm:"index;not null" json:"user_id"`
	Name         string `gorm:"not null" json:"name"`
	Color        string `gorm:"not null" json:"color"`
	IsPredefined bool   `gorm:"not null;default:false" json:"is_predefined"`
}

// BeforeCreate mints the public category id.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.NewPrefixed(CategoryIDPrefix)
	}
	return nil
}

// PredefinedCategory is one entry of the table seeded for every new user.
type PredefinedCategory struct {
	Name  string
	Color string
}

// PredefinedCategories is seeded, in this order, on first sign-in.
var PredefinedCategories = []PredefinedCategory{
	{Name: "Food", Color: "#E15554"},
	{Name: "Transport", Color: "#3D9970"},
	{Name: "Bills", Color: "#2E4F4F"},
	{Name: "Shopping", Color: "#F59E0B"},
	{Name: "Entertainment", Color: "#8B5CF6"},
	{Name: "Healthcare", Color: "#EC4899"},
	{Name: "Other", Color: "#6B7280"},
}
