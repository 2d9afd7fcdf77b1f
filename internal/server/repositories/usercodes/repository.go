// Package usercodes stores one-time codes (email confirmation, password
// restore) handed out to users.
package usercodes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, code *models.UserCode) (*models.UserCode, error)
	Find(ctx context.Context, code string, action models.CodeAction) (*models.UserCode, error)
	Exists(ctx context.Context, code string, action models.CodeAction) (bool, error)
	// Delete returns the number of rows removed, so callers racing on one
	// code can tell who consumed it.
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
