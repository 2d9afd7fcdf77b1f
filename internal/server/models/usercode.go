package models

import "time"

type CodeAction string

const (
	CodeActionConfirmEmail            CodeAction = "confirm_email"
	CodeActionRestorePasswordInitiate CodeAction = "restore_password_initiate"
	CodeActionRestorePasswordComplete CodeAction = "restore_password_complete"
)

// UserCode is a one-time code mailed to (or handed back to) a user.
type UserCode struct {
	ID        int64
	UserID    int64
	Code      string
	Action    CodeAction
	ExpireAt  time.Time
	CreatedAt time.Time
}
