// Package models holds the CLI's local state.
package models

import "time"

// Session is the token pair the CLI keeps between runs. At most one is
// stored; logging in again replaces it.
type Session struct {
	MemberID         int64
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// RefreshUsable reports whether the refresh token can still be exchanged.
func (s *Session) RefreshUsable(now time.Time) bool {
	return s != nil && s.RefreshToken != "" && now.Before(s.RefreshExpiresAt)
}
