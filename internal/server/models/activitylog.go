package models

import "time"

type ActivityAction string

const (
	ActivityCreate ActivityAction = "create"
	ActivityLogin  ActivityAction = "login"
	ActivityLogout ActivityAction = "logout"
	ActivityChange ActivityAction = "change"
)

type ActivityLog struct {
	ID        int64
	UserID    int64
	Action    ActivityAction
	Metadata  map[string]string
	CreatedAt time.Time
}
