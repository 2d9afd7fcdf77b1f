package usercodes

import (
	"context"
	"database/sql"
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
	mock.ExpectQuery(`INSERT INTO user_codes \(user_id, code, action, expire_at\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id, created_at`).
		WithArgs(int64(42), "K3Y", "confirm_email", now.Add(time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	got, err := repo.Create(context.Background(), &models.UserCode{UserID: 42, Code: "K3Y", Action: models.CodeActionConfirmEmail, ExpireAt: now.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{"duplicate code", &pgconn.PgError{Code: "23505"}, common.ErrAlreadyExists, ""},
		{"db down", errors.New("db down"), nil, "db error: db down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery(`INSERT INTO user_codes`).WillReturnError(tt.err)

			_, err := repo.Create(context.Background(), &models.UserCode{UserID: 1, Code: "c", Action: models.CodeActionConfirmEmail})
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			} else {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestFind(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT id, user_id, code, action, expire_at, created_at FROM user_codes WHERE code = \$1 AND action = \$2`).
		WithArgs("123456", "restore_password_initiate").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "code", "action", "expire_at", "created_at"}).
			AddRow(int64(9), int64(42), "123456", "restore_password_initiate", now.Add(time.Minute), now))

	got, err := repo.Find(context.Background(), "123456", models.CodeActionRestorePasswordInitiate)
	require.NoError(t, err)
	assert.Equal(t, &models.UserCode{ID: 9, UserID: 42, Code: "123456", Action: models.CodeActionRestorePasswordInitiate, ExpireAt: now.Add(time.Minute), CreatedAt: now}, got)
}

func TestFind_NotFoundAndError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM user_codes WHERE code`).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM user_codes WHERE code`).WillReturnError(errors.New("db err"))

	_, err := repo.Find(context.Background(), "x", models.CodeActionConfirmEmail)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Find(context.Background(), "x", models.CodeActionConfirmEmail)
	assert.EqualError(t, err, "db error: db err")
}

func TestExists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM user_codes WHERE code = \$1 AND action = \$2\)`).
		WithArgs("c", "confirm_email").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "c", models.CodeActionConfirmEmail)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`DELETE FROM user_codes WHERE id = \$1`).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM user_codes WHERE id = \$1`).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`DELETE FROM user_codes WHERE expire_at <= \$1`).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM user_codes WHERE expire_at <= \$1`).WillReturnError(errors.New("db err"))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = repo.DeleteExpired(context.Background(), now)
	assert.EqualError(t, err, "db error: db err")
}
