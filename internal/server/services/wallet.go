package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/idgen"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
)

const (
	// WalletIdentifierLength is the number of digits of a wallet identifier.
	WalletIdentifierLength = 8

	defaultWalletPageSize = 20
	maxWalletPageSize     = 100
)

// WalletService opens wallets. Balances are never touched here.
type WalletService struct {
	runner     dbx.Runner
	repos      repomanager.RepositoryManager
	log        logging.Logger
	maxPerType int
}

// NewWalletService limits every user to maxPerType wallets of each type;
// zero or less means no limit.
func NewWalletService(runner dbx.Runner, repos repomanager.RepositoryManager, log logging.Logger, maxPerType int) *WalletService {
	return &WalletService{runner: runner, repos: repos, log: log, maxPerType: maxPerType}
}

// Create opens a wallet and records it in the user's activity log. A failed
// log write does not undo the wallet.
func (s *WalletService) Create(ctx context.Context, userID int64, typ models.WalletType) (*models.Wallet, error) {
	w, err := s.create(ctx, s.runner.Conn(), userID, typ)
	if err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{UserID: userID, Action: models.ActivityCreate, Metadata: map[string]string{
		"wallet_type": typ.String(),
		"identifier":  strconv.FormatInt(w.Identifier, 10),
	}}
	if err := s.repos.ActivityLogs(s.runner.Conn()).Create(ctx, entry); err != nil {
		s.log.Warn(ctx, "failed to write activity log", "user_id", userID, "action", models.ActivityCreate, "error", err)
	}
	return w, nil
}

func (s *WalletService) List(ctx context.Context, userID int64, limit, offset int) ([]models.Wallet, error) {
	if limit <= 0 {
		limit = defaultWalletPageSize
	}
	if limit > maxWalletPageSize {
		limit = maxWalletPageSize
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.repos.Wallets(s.runner.Conn()).ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, storageErr("list wallets", err)
	}
	return list, nil
}

// create runs on db so sign-up can provision wallets inside its transaction.
func (s *WalletService) create(ctx context.Context, db dbx.DBTX, userID int64, typ models.WalletType) (*models.Wallet, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown wallet type %d", common.ErrorValidation, typ)
	}

	repo := s.repos.Wallets(db)

	if s.maxPerType > 0 {
		n, err := repo.CountByUserAndType(ctx, userID, typ)
		if err != nil {
			return nil, storageErr("count wallets", err)
		}
		if n >= s.maxPerType {
			return nil, common.ErrWalletLimitExceeded
		}
	}

	identifier, err := idgen.GenerateInt(ctx, WalletIdentifierLength, func(ctx context.Context, candidate int64) (bool, error) {
		return repo.IdentifierExists(ctx, typ, candidate)
	})
	if err != nil {
		return nil, storageErr("generate wallet identifier", err)
	}

	w, err := repo.Create(ctx, &models.Wallet{UserID: userID, Type: typ, Identifier: identifier})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			// lost a race for the identifier after the probe said it was free
			return nil, fmt.Errorf("%w: wallet identifier collision", common.ErrStorageUnavailable)
		}
		return nil, storageErr("create wallet", err)
	}
	return w, nil
}
