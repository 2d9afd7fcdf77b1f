// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByMemberID(ctx context.Context, memberID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	MemberIDExists(ctx context.Context, memberID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
	UpdatePassword(ctx context.Context, id int64, passwordHash, salt string) error
}
