// Package activitylogs records user-visible account events (signup, login,
// logout, credential changes).
package activitylogs

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}
