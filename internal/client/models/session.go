package models

import "time"

// Session is the authentication state shown to the user. It is derived
// from the stored credentials; it is never a source of truth itself.
type Session struct {
	IsAuthenticated bool
	User            *UserSummary
	UserID          ID
	ExpiresAt       time.Time
}

// Expired reports whether the access token's exp claim is in the past.
// A zero ExpiresAt means the expiry is unknown.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
