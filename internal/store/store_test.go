package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openMemory(t)

	rows, err := s.DB().Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('clients','accounts') ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"accounts", "clients"}, names)

	v, err := s.SchemaVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "manager.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	c, err := s1.Clients().Create(ctx, &models.Client{Username: "alice", Password: "h"})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	found, err := s2.Clients().FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, c.ID, found[0].ID)
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	_, err := s.Accounts().Insert(ctx, 999, models.AccountDraft{Name: "github", Username: "ghost", Password: "x"})
	require.Error(t, err, "owner must exist")

	var fk int
	require.NoError(t, s.DB().QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestDeleteClient_CascadesToAccounts(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	c, err := s.Clients().Create(ctx, &models.Client{Username: "alice", Password: "h"})
	require.NoError(t, err)
	_, err = s.Accounts().Insert(ctx, c.ID, models.AccountDraft{Name: "github", Username: "alice_gh", Password: "secret1"})
	require.NoError(t, err)

	_, err = s.DB().Exec(`DELETE FROM clients WHERE id = ?`, int64(c.ID))
	require.NoError(t, err)

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestOpen_UnopenablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "manager.db")

	_, err := Open(context.Background(), path)
	require.ErrorIs(t, err, common.ErrConnection)
}

func TestOpen_DriverOpenError(t *testing.T) {
	old := sqlOpen
	t.Cleanup(func() { sqlOpen = old })
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("no driver") }

	_, err := Open(context.Background(), "whatever.db")
	require.ErrorIs(t, err, common.ErrConnection)
	require.ErrorContains(t, err, "no driver")
}

func TestSchemaVersion_ClosedStore(t *testing.T) {
	s := openMemory(t)
	require.NoError(t, s.Close())

	_, err := s.SchemaVersion(context.Background())
	require.ErrorIs(t, err, common.ErrPersistence)
}
