package services

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikeValue escapes LIKE wildcards so value matches literally.
func escapeLikeValue(value string) string {
	return likeEscaper.Replace(value)
}

// datePrefix returns a scope matching rows whose date string starts with
// prefix. An empty prefix matches everything.
func datePrefix(prefix string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if prefix == "" {
			return db
		}
		return db.Where(`date LIKE ? ESCAPE '\'`, escapeLikeValue(prefix)+"%")
	}
}

// ownedBy scopes a query to one tenant.
func ownedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
