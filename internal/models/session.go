package models

import "time"

// Session maps a provider-issued token to a user. The token is indexed but
// not unique: exchanging the same token twice stores two rows.
type Session struct {
	Base
	SessionToken string    `gorm:"index;not null" json:"-"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
}

// ExpiredAt reports whether the session is no longer valid at now.
// A session is valid only while ExpiresAt is strictly after now.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
