package models

import (
	"spendwise/internal/uuid"

	"gorm.io/gorm"
)

// Expense is a single spending record. Category is free text and Date is kept
// exactly as supplied so month filters can match on its prefix.
type Expense struct {
	Base
	ExpenseID string  `gorm:"uniqueIndex;not null" json:"expense_id"`
	UserID    string  `gorm:"index;not null" json:"user_id"`
	Title     string  `gorm:"not null" json:"title"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Category  string  `gorm:"not null" json:"category"`
	Date      string  `gorm:"index;not null" json:"date"`
	Notes     *string `json:"notes"`
}

// BeforeCreate mints the public expense id.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ExpenseID == "" {
		e.ExpenseID = uuid.NewPrefixed(ExpenseIDPrefix)
	}
	return nil
}
