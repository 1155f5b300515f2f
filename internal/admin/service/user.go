package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/pkg/idx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLoginTaken   = errors.New("login already taken")
)

type UserService struct {
	Store store.Store
}

// ListUsers returns every user in the directory.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// CreateUser inserts a new directory record and returns it as persisted.
//
// The record is re-read after the insert; callers get back exactly what
// the store holds. A miss on that read means a concurrent delete won the
// race and is surfaced as an internal error rather than a fabricated
// response.
func (s *UserService) CreateUser(ctx context.Context, login string, admin bool) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user := domain.User{
		ID:    idx.New().String(),
		Login: login,
		Admin: admin,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("attempted to create user with taken login",
				slog.String("login", login),
			)
			return domain.User{}, ErrLoginTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("created user missing on re-read",
				slog.String("user_id", user.ID),
			)
			return domain.User{}, fmt.Errorf("couldn't find the user we just created: %s", user.ID)
		}
		log.Error("failed to re-read created user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user created",
		slog.String("user_id", created.ID),
		slog.String("login", created.Login),
		slog.Bool("admin", created.Admin),
	)

	return created, nil
}

// GetUserByLogin fetches a user by its provider login.
func (s *UserService) GetUserByLogin(ctx context.Context, login string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// SetAdmin overwrites the admin flag. Idempotent: setting the flag to the
// value it already holds succeeds without error.
func (s *UserService) SetAdmin(ctx context.Context, userID string, admin bool) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().SetAdmin(ctx, userID, admin); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to update admin flag", slog.Any("error", err))
		return err
	}

	log.Info("admin flag updated",
		slog.String("user_id", userID),
		slog.Bool("admin", admin),
	)
	return nil
}

// DeleteUser removes a user. Deletion is not idempotent; a second call
// for the same id reports the user as missing.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to delete user", slog.Any("error", err))
		return err
	}

	log.Info("user deleted", slog.String("user_id", userID))
	return nil
}
