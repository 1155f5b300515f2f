package http_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/aussiebroadwan/collab/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	// Create, then duplicate create conflicts.
	alice, err := client.CreateUser(ctx, "alice", false)
	require.NoError(t, err)
	require.Equal(t, "alice", alice.Login)
	require.False(t, alice.Admin)
	require.NotEmpty(t, alice.ID)

	_, err = client.CreateUser(ctx, "alice", false)
	requireAPIError(t, err, http.StatusConflict)

	// Fetch by login.
	fetched, err := client.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice, fetched)

	_, err = client.GetUser(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound)

	// Promote to admin, twice for idempotency.
	require.NoError(t, client.UpdateUser(ctx, alice.ID, true))
	require.NoError(t, client.UpdateUser(ctx, alice.ID, true))

	fetched, err = client.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.True(t, fetched.Admin)

	// List includes the user.
	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	// Delete, then deleting again is a 404.
	require.NoError(t, client.DeleteUser(ctx, alice.ID))
	requireAPIError(t, client.DeleteUser(ctx, alice.ID), http.StatusNotFound)

	users, err = client.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestUpdateUser_Unknown(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	requireAPIError(t, client.UpdateUser(ctx, "no-such-id", true), http.StatusNotFound)
}

func TestInviteCodeLifecycle(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	alice, err := client.CreateUser(ctx, "alice", true)
	require.NoError(t, err)

	require.NoError(t, client.CreateInviteCode(ctx, alice.ID, 5))

	codes, err := client.ListInviteCodes(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	require.Len(t, codes[0].Code, 16)
	require.Equal(t, alice.ID, codes[0].OwnerUserID)
	require.Equal(t, 5, codes[0].AllowedUsageCount)
	require.Equal(t, 5, codes[0].RemainingCount)

	// Administrative reset of the remaining count.
	require.NoError(t, client.UpdateInviteCode(ctx, codes[0].Code, 0))

	codes, err = client.ListInviteCodes(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 0, codes[0].RemainingCount)

	requireAPIError(t, client.UpdateInviteCode(ctx, "unknown-code", 3), http.StatusNotFound)
}

func TestCreateInviteCode_UnknownOwner(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	requireAPIError(t, client.CreateInviteCode(ctx, "no-such-id", 5), http.StatusNotFound)
}

func TestCreateInviteCode_NegativeCount(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	alice, err := client.CreateUser(ctx, "alice", true)
	require.NoError(t, err)

	requireAPIError(t, client.CreateInviteCode(ctx, alice.ID, -1), http.StatusBadRequest)
}

func TestCreateAccessToken(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	alice, err := client.CreateUser(ctx, "alice", true)
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := cryptox.EncodePublicKey(&key.PublicKey)
	require.NoError(t, err)

	resp, err := client.CreateAccessToken(ctx, "alice", pub, "")
	require.NoError(t, err)
	require.Equal(t, alice.ID, resp.UserID)

	ciphertext, err := base64.StdEncoding.DecodeString(resp.EncryptedAccessToken)
	require.NoError(t, err)
	secret, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, key, ciphertext, nil)
	require.NoError(t, err)
	require.Len(t, secret, 43)
}

func TestCreateAccessToken_Impersonation(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	_, err := client.CreateUser(ctx, "alice", false)
	require.NoError(t, err)
	bob, err := client.CreateUser(ctx, "bob", false)
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := cryptox.EncodePublicKey(&key.PublicKey)
	require.NoError(t, err)

	// Non-admin impersonation is a 401 whether or not the target exists.
	_, err = client.CreateAccessToken(ctx, "alice", pub, "bob")
	requireAPIError(t, err, http.StatusUnauthorized)
	_, err = client.CreateAccessToken(ctx, "alice", pub, "ghost")
	requireAPIError(t, err, http.StatusUnauthorized)

	// Promote alice; an unknown target is now a 422, a known one works.
	require.NoError(t, client.UpdateUser(ctx, findUserID(t, client, "alice"), true))

	_, err = client.CreateAccessToken(ctx, "alice", pub, "ghost")
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	resp, err := client.CreateAccessToken(ctx, "alice", pub, "bob")
	require.NoError(t, err)
	require.Equal(t, bob.ID, resp.UserID)
}

func TestCreateAccessToken_BadInput(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	_, err := client.CreateUser(ctx, "alice", false)
	require.NoError(t, err)

	_, err = client.CreateAccessToken(ctx, "alice", "not-a-key", "")
	requireAPIError(t, err, http.StatusBadRequest)

	_, err = client.CreateAccessToken(ctx, "alice", "", "")
	requireAPIError(t, err, http.StatusBadRequest)

	_, err = client.CreateAccessToken(ctx, "ghost", "ignored-key", "")
	requireAPIError(t, err, http.StatusNotFound)
}

func TestPanicReport(t *testing.T) {
	ctx := context.Background()
	_, client, _ := newTestServer(t)

	require.NoError(t, client.ReportPanic(ctx, "0.1.0", "thread 'main' panicked"))
}

func findUserID(t *testing.T, client *adminsdk.Client, login string) string {
	t.Helper()

	u, err := client.GetUser(context.Background(), login)
	require.NoError(t, err)
	return u.ID
}
