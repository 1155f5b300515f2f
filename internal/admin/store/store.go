package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and make it
// easy to fake individual relations in tests.
type Store interface {
	Users() Users
	InviteCodes() InviteCodes
	AccessTokens() AccessTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// ListUsers returns every user ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByLogin returns a user by its provider login. Logins are
	// case-sensitive and unique.
	GetUserByLogin(ctx context.Context, login string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate login surfaces ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// SetAdmin overwrites the admin flag and bumps updated_at. Unknown ids
	// surface ErrNotFound.
	SetAdmin(ctx context.Context, userID string, admin bool) error

	// DeleteUser removes the user; invite codes and access tokens cascade
	// per schema. Unknown ids surface ErrNotFound.
	DeleteUser(ctx context.Context, userID string) error
}

type InviteCodes interface {
	// ListByOwner returns all invite codes owned by a user.
	ListByOwner(ctx context.Context, ownerUserID string) ([]domain.InviteCode, error)

	// CreateInviteCode inserts a new invite code keyed by its code string.
	// A duplicate code surfaces ErrAlreadyExists; an unknown owner trips
	// the referential constraint and surfaces ErrNotFound.
	CreateInviteCode(ctx context.Context, ic domain.InviteCode) error

	// SetRemainingCount overwrites remaining_count and bumps updated_at.
	// Unknown codes surface ErrNotFound.
	SetRemainingCount(ctx context.Context, code string, remaining int) error
}

type AccessTokens interface {
	// CreateAccessToken stores the audit record of an issued token
	// (token_hash is argon2id of the plaintext secret).
	CreateAccessToken(ctx context.Context, t domain.AccessToken) error

	// ListByUser returns the audit records for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.AccessToken, error)
}
