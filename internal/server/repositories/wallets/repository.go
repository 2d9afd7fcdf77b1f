// Package wallets declares the repository contract for user wallets.
package wallets

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, w *models.Wallet) (*models.Wallet, error)
	CountByUserAndType(ctx context.Context, userID int64, typ models.WalletType) (int, error)
	IdentifierExists(ctx context.Context, typ models.WalletType, identifier int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Wallet, error)
}
