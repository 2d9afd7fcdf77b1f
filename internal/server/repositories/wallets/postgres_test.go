package wallets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`INSERT INTO wallets \(user_id, type, identifier\) VALUES \(\$1, \$2, \$3\) RETURNING id, balance::text, created_at`).
		WithArgs(int64(42), int16(3), int64(12345678)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "created_at"}).AddRow(int64(1), "0.00000000", now))

	got, err := repo.Create(context.Background(), &models.Wallet{UserID: 42, Type: models.WalletTypeGold, Identifier: 12345678})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "0.00000000", got.Balance)
}

func TestCreate_DuplicateIdentifier(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`INSERT INTO wallets`).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "wallets_type_identifier_uq"})

	_, err := repo.Create(context.Background(), &models.Wallet{UserID: 42, Type: models.WalletTypeUSD, Identifier: 1})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestCountByUserAndType(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM wallets WHERE user_id = \$1 AND type = \$2`).
		WithArgs(int64(42), int16(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByUserAndType(context.Background(), 42, models.WalletTypeUSD)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIdentifierExists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM wallets WHERE type = \$1 AND identifier = \$2\)`).
		WithArgs(int16(2), int64(87654321)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("db err"))

	ok, err := repo.IdentifierExists(context.Background(), models.WalletTypeEUR, 87654321)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.IdentifierExists(context.Background(), models.WalletTypeEUR, 1)
	assert.EqualError(t, err, "db error: db err")
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM wallets WHERE user_id = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
		WithArgs(int64(42), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "identifier", "balance", "created_at"}).
			AddRow(int64(1), int64(42), int16(1), int64(11111111), "0", now).
			AddRow(int64(2), int64(42), int16(2), int64(22222222), "10.5", now))

	got, err := repo.ListByUser(context.Background(), 42, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.WalletTypeUSD, got[0].Type)
	assert.Equal(t, models.WalletTypeEUR, got[1].Type)
	assert.Equal(t, "10.5", got[1].Balance)
}

func TestListByUser_ScanError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM wallets`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "identifier", "balance", "created_at"}).
			AddRow("not-a-number", int64(42), int16(1), int64(1), "0", now))

	_, err := repo.ListByUser(context.Background(), 42, 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}
