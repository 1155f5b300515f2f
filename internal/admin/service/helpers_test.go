package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/internal/admin/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func mustCreateUser(t *testing.T, svc *UserService, login string, admin bool) domain.User {
	t.Helper()

	user, err := svc.CreateUser(context.Background(), login, admin)
	require.NoError(t, err)
	return user
}
