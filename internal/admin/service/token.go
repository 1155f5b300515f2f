package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/pkg/cryptox"
	"github.com/aussiebroadwan/collab/pkg/idx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

// ErrInvalidPublicKey reports a caller-supplied public key that could not
// be used for sealing.
var ErrInvalidPublicKey = errors.New("invalid public key")

type TokenService struct {
	Store      store.Store
	Authorizer *ImpersonationAuthorizer

	// GenerateSecret is injected so tests can assert on secret shape
	// deterministically. Defaults to cryptox.GenerateSecret.
	GenerateSecret func() (string, error)
}

func (s *TokenService) generateSecret() (string, error) {
	if s.GenerateSecret != nil {
		return s.GenerateSecret()
	}
	return cryptox.GenerateSecret()
}

// CreateAccessToken issues a fresh access-token secret for the resolved
// target user and seals it under the caller-supplied public key.
//
// The plaintext secret is a 43-character base64url string (32 random
// bytes); that is what clients recover after decryption. Only an argon2id
// hash is recorded server-side, and the plaintext never appears in logs
// or error messages.
func (s *TokenService) CreateAccessToken(
	ctx context.Context,
	subjectLogin string,
	publicKey string,
	imp Impersonation,
) (domain.IssuedToken, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the subject.
	subject, err := s.Store.Users().GetUserByLogin(ctx, subjectLogin)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.IssuedToken{}, ErrUserNotFound
		}
		log.Error("failed to fetch subject user", slog.Any("error", err))
		return domain.IssuedToken{}, err
	}

	// 2. Authorize impersonation and resolve the final target.
	target, err := s.Authorizer.Authorize(ctx, subject, imp)
	if err != nil {
		return domain.IssuedToken{}, err
	}

	// 3. Parse the caller's public key before generating anything.
	pub, err := cryptox.ParsePublicKey(publicKey)
	if err != nil {
		log.Warn("token request with malformed public key",
			slog.String("subject", subjectLogin),
		)
		return domain.IssuedToken{}, ErrInvalidPublicKey
	}

	// 4. Generate the secret bound to the target user.
	secret, err := s.generateSecret()
	if err != nil {
		log.Error("failed to generate access token secret", slog.Any("error", err))
		return domain.IssuedToken{}, err
	}

	// 5. Record the audit row; only the hash is persisted.
	hash, err := cryptox.HashAccessToken(secret)
	if err != nil {
		log.Error("failed to hash access token secret", slog.Any("error", err))
		return domain.IssuedToken{}, err
	}

	record := domain.AccessToken{
		ID:        idx.New().String(),
		UserID:    target.ID,
		TokenHash: hash,
	}
	if err := s.Store.AccessTokens().CreateAccessToken(ctx, record); err != nil {
		log.Error("failed to record access token", slog.Any("error", err))
		return domain.IssuedToken{}, err
	}

	// 6. Seal the secret for transport.
	sealed, err := cryptox.Seal(secret, pub)
	if err != nil {
		log.Error("failed to seal access token", slog.Any("error", err))
		return domain.IssuedToken{}, err
	}

	log.Info("access token issued",
		slog.String("subject", subject.Login),
		slog.String("target_user_id", target.ID),
		slog.Bool("impersonated", target.ID != subject.ID),
	)

	return domain.IssuedToken{
		UserID:               target.ID,
		EncryptedAccessToken: sealed,
	}, nil
}
