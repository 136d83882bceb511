package models

import (
	"spendwise/internal/uuid"

	"gorm.io/gorm"
)

// Budget is a spending limit for one category in one month. The
// (user_id, category, month) triple is unique.
type Budget struct {
	Base
	BudgetID string  `gorm:"uniqueIndex;not null" json:"budget_id"`
	UserID   string  `gorm:"not null;uniqueIndex:idx_budget_key" json:"user_id"`
	Category string  `gorm:"not null;uniqueIndex:idx_budget_key" json:"category"`
	Month    string  `gorm:"not null;uniqueIndex:idx_budget_key" json:"month"`
	Amount   float64 `gorm:"not null" json:"amount"`
}

// BeforeCreate mints the public budget id.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.BudgetID == "" {
		b.BudgetID = uuid.NewPrefixed(BudgetIDPrefix)
	}
	return nil
}

// Budget progress statuses.
const (
	BudgetStatusOK      = "ok"
	BudgetStatusWarning = "warning"
	BudgetStatusOver    = "over"
)

// BudgetProgress compares a budget with what was spent in its category.
type BudgetProgress struct {
	BudgetID   string  `json:"budget_id"`
	Category   string  `json:"category"`
	Month      string  `json:"month"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}
