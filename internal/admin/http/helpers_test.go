package http_test

import (
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	httpapi "github.com/aussiebroadwan/collab/internal/admin/http"
	"github.com/aussiebroadwan/collab/internal/admin/service"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

const testAPIToken = "test-api-token-12345"

// newTestServer wires a router against a fresh in-memory store and
// returns an SDK client pointed at it.
func newTestServer(t *testing.T) (*httptest.Server, *adminsdk.Client, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := httpapi.NewRouter(testAPIToken, slog.Default())
	router.UserService = &service.UserService{Store: st}
	router.InviteCodeService = &service.InviteCodeService{Store: st}
	router.TokenService = &service.TokenService{
		Store:      st,
		Authorizer: &service.ImpersonationAuthorizer{Store: st},
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, adminsdk.New(srv.URL, testAPIToken), st
}

// requireAPIError asserts err is an *adminsdk.APIError with the given
// status code.
func requireAPIError(t *testing.T, err error, status int) *adminsdk.APIError {
	t.Helper()

	var apiErr *adminsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}
