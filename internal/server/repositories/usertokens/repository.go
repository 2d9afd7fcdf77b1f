// Package usertokens declares the server-side repository contract for the
// access/refresh token pairs backing user sessions.
package usertokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type Repository interface {
	// CreatePair inserts the refresh row and then the access row pointing at
	// it. Either both rows exist afterwards or neither does.
	CreatePair(ctx context.Context, userID int64, accessCode string, accessExpireAt time.Time, refreshCode string, refreshExpireAt time.Time) (accessID, refreshID int64, err error)
	FindByCode(ctx context.Context, code string, typ models.TokenType) (*models.UserToken, error)
	// FindRelated resolves the other half of the pair tokenID belongs to.
	FindRelated(ctx context.Context, tokenID int64) (*models.UserToken, error)
	// DeletePair removes tokenID and its partner and returns how many rows
	// went away. Zero is not an error.
	DeletePair(ctx context.Context, tokenID int64) (int64, error)
	// DeleteAllForUser removes every token of the user and returns the removed rows.
	DeleteAllForUser(ctx context.Context, userID int64) ([]models.UserToken, error)
	ListByUser(ctx context.Context, userID int64, typ models.TokenType) ([]models.UserToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
