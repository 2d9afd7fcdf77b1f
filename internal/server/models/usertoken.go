package models

import "time"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

func (t TokenType) Valid() bool {
	return t == TokenTypeAccess || t == TokenTypeRefresh
}

// UserToken is one issued access or refresh token. Tokens are created in
// pairs; the access row points at its refresh row through RelatedTokenID.
type UserToken struct {
	ID             int64
	UserID         int64
	Type           TokenType
	Code           string
	RelatedTokenID *int64
	ExpireAt       time.Time
	CreatedAt      time.Time
}

func (t *UserToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpireAt)
}
