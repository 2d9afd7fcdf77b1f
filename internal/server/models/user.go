// Package models defines server-side data models persisted in the database.
package models

import "time"

type UserStatus int16

const (
	UserStatusEmailNotConfirmed UserStatus = 0
	UserStatusActive            UserStatus = 1
	UserStatusBlocked           UserStatus = 2
)

func (s UserStatus) String() string {
	switch s {
	case UserStatusEmailNotConfirmed:
		return "email_not_confirmed"
	case UserStatusActive:
		return "active"
	case UserStatusBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// User is an account. MemberID is the public 7-digit login identifier;
// PasswordHash is bcrypt over password+Salt.
type User struct {
	ID           int64
	MemberID     int64
	Email        string
	PasswordHash string
	Salt         string
	Status       UserStatus
	City         string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
