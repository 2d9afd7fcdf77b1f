package wallets

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, w *models.Wallet) (*models.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, type, identifier)
		VALUES ($1, $2, $3)
		RETURNING id, balance::text, created_at
	`
	err := r.db.QueryRowContext(ctx, query, w.UserID, int16(w.Type), w.Identifier).Scan(&w.ID, &w.Balance, &w.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *PostgresRepository) CountByUserAndType(ctx context.Context, userID int64, typ models.WalletType) (int, error) {
	var n int
	query := `SELECT count(*) FROM wallets WHERE user_id = $1 AND type = $2`
	if err := r.db.QueryRowContext(ctx, query, userID, int16(typ)).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) IdentifierExists(ctx context.Context, typ models.WalletType, identifier int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM wallets WHERE type = $1 AND identifier = $2)`
	if err := r.db.QueryRowContext(ctx, query, int16(typ), identifier).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Wallet, error) {
	query := `
		SELECT id, user_id, type, identifier, balance::text, created_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Wallet
	for rows.Next() {
		var (
			w   models.Wallet
			typ int16
		)
		if err := rows.Scan(&w.ID, &w.UserID, &typ, &w.Identifier, &w.Balance, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		w.Type = models.WalletType(typ)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
