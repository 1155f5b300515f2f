package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/collab/pkg/cryptox"
	"github.com/aussiebroadwan/collab/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCreateInviteCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	svc := &InviteCodeService{Store: st}

	owner := mustCreateUser(t, users, "alice", true)

	invite, err := svc.CreateInviteCode(ctx, owner.ID, 5)
	require.NoError(t, err)
	require.Len(t, invite.Code, InviteCodeLength)
	require.Equal(t, 5, invite.AllowedUsageCount)
	require.Equal(t, 5, invite.RemainingCount)

	for _, c := range invite.Code {
		require.True(t, strings.ContainsRune(cryptox.CodeAlphabet, c),
			"code contains character outside alphabet: %q", c)
	}

	codes, err := svc.ListInviteCodes(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	require.Equal(t, invite.Code, codes[0].Code)
	require.Equal(t, owner.ID, codes[0].OwnerUserID)
}

func TestCreateInviteCode_UnknownOwner(t *testing.T) {
	ctx := context.Background()
	svc := &InviteCodeService{Store: newTestStore(t)}

	_, err := svc.CreateInviteCode(ctx, idx.New().String(), 3)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateInviteCode_Collision(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	// Force the generator to hand out the same code twice; the store's
	// uniqueness constraint surfaces the collision, no retry.
	svc := &InviteCodeService{
		Store:        st,
		GenerateCode: func(int) (string, error) { return "fixed-code-000000", nil },
	}

	owner := mustCreateUser(t, users, "alice", true)

	_, err := svc.CreateInviteCode(ctx, owner.ID, 1)
	require.NoError(t, err)

	_, err = svc.CreateInviteCode(ctx, owner.ID, 1)
	require.ErrorIs(t, err, ErrCodeCollision)
}

func TestCreateInviteCode_NegativeCount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	svc := &InviteCodeService{Store: st}

	owner := mustCreateUser(t, users, "alice", true)

	_, err := svc.CreateInviteCode(ctx, owner.ID, -1)
	require.ErrorIs(t, err, ErrInvalidCount)
}

func TestSetRemainingCount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	svc := &InviteCodeService{Store: st}

	owner := mustCreateUser(t, users, "alice", true)
	invite, err := svc.CreateInviteCode(ctx, owner.ID, 5)
	require.NoError(t, err)

	require.NoError(t, svc.SetRemainingCount(ctx, invite.Code, 0))

	codes, err := svc.ListInviteCodes(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, 0, codes[0].RemainingCount)
	require.Equal(t, 5, codes[0].AllowedUsageCount)
}

func TestSetRemainingCount_UnknownCode(t *testing.T) {
	ctx := context.Background()
	svc := &InviteCodeService{Store: newTestStore(t)}

	err := svc.SetRemainingCount(ctx, "nope", 3)
	require.ErrorIs(t, err, ErrInviteCodeNotFound)
}

func TestSetRemainingCount_Negative(t *testing.T) {
	ctx := context.Background()
	svc := &InviteCodeService{Store: newTestStore(t)}

	err := svc.SetRemainingCount(ctx, "whatever", -2)
	require.ErrorIs(t, err, ErrInvalidCount)
}
