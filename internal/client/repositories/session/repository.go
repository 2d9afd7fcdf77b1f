// Package session persists the CLI's token pair in the local database.
package session

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// Repository stores a single session row. Load returns (nil, nil) when
// nobody is logged in.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}
