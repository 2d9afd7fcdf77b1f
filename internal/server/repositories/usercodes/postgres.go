package usercodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, c *models.UserCode) (*models.UserCode, error) {
	query := `
		INSERT INTO user_codes (user_id, code, action, expire_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.Code, string(c.Action), c.ExpireAt).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Find(ctx context.Context, code string, action models.CodeAction) (*models.UserCode, error) {
	query := `
		SELECT id, user_id, code, action, expire_at, created_at
		FROM user_codes
		WHERE code = $1 AND action = $2
	`
	var (
		c   models.UserCode
		act string
	)
	err := r.db.QueryRowContext(ctx, query, code, string(action)).
		Scan(&c.ID, &c.UserID, &c.Code, &act, &c.ExpireAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Action = models.CodeAction(act)
	return &c, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, code string, action models.CodeAction) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_codes WHERE code = $1 AND action = $2)`
	if err := r.db.QueryRowContext(ctx, query, code, string(action)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, `DELETE FROM user_codes WHERE id = $1`, id)
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.exec(ctx, `DELETE FROM user_codes WHERE expire_at <= $1`, now)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
