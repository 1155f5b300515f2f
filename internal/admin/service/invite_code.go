package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/pkg/cryptox"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

// InviteCodeLength is the fixed length of generated invite codes.
const InviteCodeLength = 16

var (
	ErrInviteCodeNotFound = errors.New("invite code not found")
	ErrCodeCollision      = errors.New("generated invite code already exists")
	ErrInvalidCount       = errors.New("count must be non-negative")
)

type InviteCodeService struct {
	Store store.Store

	// GenerateCode is injected so tests can assert on code shape
	// deterministically. Defaults to cryptox.GenerateCode.
	GenerateCode func(length int) (string, error)
}

func (s *InviteCodeService) generateCode(length int) (string, error) {
	if s.GenerateCode != nil {
		return s.GenerateCode(length)
	}
	return cryptox.GenerateCode(length)
}

// ListInviteCodes returns the invite codes owned by a user.
func (s *InviteCodeService) ListInviteCodes(ctx context.Context, ownerUserID string) ([]domain.InviteCode, error) {
	return s.Store.InviteCodes().ListByOwner(ctx, ownerUserID)
}

// CreateInviteCode generates a fresh 16-character code for the owner and
// persists it with remaining_count equal to allowedUsageCount.
//
// Concurrent creations may race on the generated code; the store's
// uniqueness constraint is the single source of truth and a collision is
// surfaced as ErrCodeCollision rather than retried internally.
func (s *InviteCodeService) CreateInviteCode(
	ctx context.Context,
	ownerUserID string,
	allowedUsageCount int,
) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the requested budget.
	if allowedUsageCount < 0 {
		return domain.InviteCode{}, ErrInvalidCount
	}

	// 2. Generate the random code.
	code, err := s.generateCode(InviteCodeLength)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	invite := domain.InviteCode{
		Code:              code,
		OwnerUserID:       ownerUserID,
		AllowedUsageCount: allowedUsageCount,
		RemainingCount:    allowedUsageCount,
	}

	// 3. Persist. The store distinguishes a duplicate code from a missing
	// owner via its constraints.
	if err := s.Store.InviteCodes().CreateInviteCode(ctx, invite); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			log.Warn("invite code collision", slog.String("owner_user_id", ownerUserID))
			return domain.InviteCode{}, ErrCodeCollision
		case errors.Is(err, store.ErrNotFound):
			log.Warn("attempted to create invite code for unknown owner",
				slog.String("owner_user_id", ownerUserID),
			)
			return domain.InviteCode{}, ErrUserNotFound
		}
		log.Error("failed to create invite code", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	log.Info("invite code created",
		slog.String("owner_user_id", ownerUserID),
		slog.Int("allowed_usage_count", allowedUsageCount),
	)

	return invite, nil
}

// SetRemainingCount overwrites the remaining count of an invite code. The
// value is not clamped against allowed_usage_count; it is an
// administrative raw set.
func (s *InviteCodeService) SetRemainingCount(ctx context.Context, code string, remaining int) error {
	log := slogx.FromContext(ctx)

	if remaining < 0 {
		return ErrInvalidCount
	}

	if err := s.Store.InviteCodes().SetRemainingCount(ctx, code, remaining); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteCodeNotFound
		}
		log.Error("failed to update invite code", slog.Any("error", err))
		return err
	}

	log.Info("invite code updated",
		slog.String("code", code),
		slog.Int("remaining_count", remaining),
	)
	return nil
}
