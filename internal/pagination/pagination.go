// Package pagination applies the fixed result caps used by list endpoints.
// Lists are never paged; results beyond the cap are silently dropped.
package pagination

import "gorm.io/gorm"

const (
	// ExpenseListCap bounds expense lists, stats and exports.
	ExpenseListCap = 1000
	// CollectionCap bounds category and budget lists.
	CollectionCap = 100
)

// Cap returns a GORM scope that limits a query to n rows.
func Cap(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}

// NonNil returns items, or an empty slice when items is nil, so lists always
// serialize as JSON arrays.
func NonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
