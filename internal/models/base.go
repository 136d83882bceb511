package models

import "time"

// Base contains common columns for all tables. ID is an internal
// auto-increment key that records insertion order; public identifiers live
// on each model.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ID prefixes for public identifiers.
const (
	UserIDPrefix     = "user"
	CategoryIDPrefix = "cat"
	ExpenseIDPrefix  = "exp"
	BudgetIDPrefix   = "budget"
)
