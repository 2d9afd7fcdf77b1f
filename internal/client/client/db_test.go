package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/client/repositories/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_MigratesAndIsReusable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)

	repo := session.NewSQLiteRepository(db)
	require.NoError(t, repo.Save(ctx, &models.Session{MemberID: 7, AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, db.Close())

	// second open runs migrations again and keeps the data
	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := session.NewSQLiteRepository(db).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.MemberID)
}

func TestInitDatabase_CreatesDirectory(t *testing.T) {
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "nested", "dir", "x.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestInitDatabase_BadPath(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocker"), []byte("x"), 0o600))

	_, err := InitDatabase(context.Background(), filepath.Join(tmp, "blocker", "x.db"))
	require.Error(t, err)
}
