// Package usertokens provides a PostgreSQL-backed repository for the token
// pairs issued at login and rotation.
package usertokens

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

const tokenColumns = `id, user_id, type, code, related_token_id, expire_at, created_at`

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreatePair writes both rows with one statement, so it is atomic even when
// db is not a transaction.
func (r *PostgresRepository) CreatePair(ctx context.Context, userID int64, accessCode string, accessExpireAt time.Time, refreshCode string, refreshExpireAt time.Time) (int64, int64, error) {
	query := `
		WITH refresh AS (
			INSERT INTO user_tokens (user_id, type, code, expire_at)
			VALUES ($1, 'refresh', $2, $3)
			RETURNING id
		)
		INSERT INTO user_tokens (user_id, type, code, related_token_id, expire_at)
		SELECT $1, 'access', $4, refresh.id, $5 FROM refresh
		RETURNING id, related_token_id
	`
	var accessID, refreshID int64
	err := r.db.QueryRowContext(ctx, query, userID, refreshCode, refreshExpireAt, accessCode, accessExpireAt).
		Scan(&accessID, &refreshID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, 0, common.ErrAlreadyExists
		}
		return 0, 0, fmt.Errorf("db error: %w", err)
	}
	return accessID, refreshID, nil
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string, typ models.TokenType) (*models.UserToken, error) {
	query := `
		SELECT ` + tokenColumns + `
		FROM user_tokens
		WHERE code = $1 AND type = $2
	`
	return r.findOne(ctx, query, code, string(typ))
}

func (r *PostgresRepository) FindRelated(ctx context.Context, tokenID int64) (*models.UserToken, error) {
	query := `
		SELECT ` + tokenColumns + `
		FROM user_tokens
		WHERE related_token_id = $1
		   OR id = (SELECT related_token_id FROM user_tokens WHERE id = $1)
		LIMIT 1
	`
	return r.findOne(ctx, query, tokenID)
}

// DeletePair is a single conditional DELETE. When two callers race on the
// same pair, the loser's statement finds no rows once the winner commits.
func (r *PostgresRepository) DeletePair(ctx context.Context, tokenID int64) (int64, error) {
	query := `
		DELETE FROM user_tokens
		WHERE id = $1
		   OR related_token_id = $1
		   OR id = (SELECT related_token_id FROM user_tokens WHERE id = $1)
	`
	res, err := r.db.ExecContext(ctx, query, tokenID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID int64) ([]models.UserToken, error) {
	query := `
		DELETE FROM user_tokens
		WHERE user_id = $1
		RETURNING ` + tokenColumns
	return r.findMany(ctx, query, userID)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, typ models.TokenType) ([]models.UserToken, error) {
	query := `
		SELECT ` + tokenColumns + `
		FROM user_tokens
		WHERE user_id = $1 AND type = $2
		ORDER BY id
	`
	return r.findMany(ctx, query, userID, string(typ))
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM user_tokens
		WHERE expire_at <= $1
	`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanToken(s scanner) (*models.UserToken, error) {
	var (
		t       models.UserToken
		typ     string
		related sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.UserID, &typ, &t.Code, &related, &t.ExpireAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Type = models.TokenType(typ)
	if related.Valid {
		id := related.Int64
		t.RelatedTokenID = &id
	}
	return &t, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (*models.UserToken, error) {
	t, err := scanToken(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) findMany(ctx context.Context, query string, args ...any) ([]models.UserToken, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.UserToken
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
