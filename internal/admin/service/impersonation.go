package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/store"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

var (
	// ErrImpersonationDenied reports a non-admin requesting a token on
	// behalf of someone else.
	ErrImpersonationDenied = errors.New("you do not have permission to impersonate other users")

	// ErrImpersonationTargetMissing reports an admin naming a target login
	// that does not exist. Distinct from ErrImpersonationDenied because the
	// two map to different response semantics.
	ErrImpersonationTargetMissing = errors.New("impersonation target does not exist")
)

// Impersonation expresses an optional request to act as another user. The
// zero value means no impersonation.
type Impersonation struct {
	login     string
	requested bool
}

// NoImpersonation returns the absent case: the requester acts as itself.
func NoImpersonation() Impersonation {
	return Impersonation{}
}

// ImpersonateLogin returns a request to act as the user with the given
// login.
func ImpersonateLogin(login string) Impersonation {
	return Impersonation{login: login, requested: true}
}

// Requested reports whether impersonation was asked for.
func (i Impersonation) Requested() bool { return i.requested }

// Login returns the target login; only meaningful when Requested.
func (i Impersonation) Login() string { return i.login }

// ImpersonationAuthorizer decides whether a caller may obtain a token on
// behalf of another identity.
type ImpersonationAuthorizer struct {
	Store store.Store
}

// Authorize resolves the final token target for requester under imp.
// Outcomes are exhaustive:
//   - no impersonation: the requester itself;
//   - requester is admin and the target exists: the target;
//   - requester is not admin: ErrImpersonationDenied, checked before any
//     target lookup so the error does not reveal whether the target exists;
//   - requester is admin but the target is unknown: ErrImpersonationTargetMissing.
func (a *ImpersonationAuthorizer) Authorize(
	ctx context.Context,
	requester domain.User,
	imp Impersonation,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if !imp.Requested() {
		return requester, nil
	}

	if !requester.Admin {
		log.Warn("impersonation attempt by non-admin",
			slog.String("requester", requester.Login),
			slog.String("target", imp.Login()),
		)
		return domain.User{}, ErrImpersonationDenied
	}

	target, err := a.Store.Users().GetUserByLogin(ctx, imp.Login())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("impersonation target missing",
				slog.String("requester", requester.Login),
				slog.String("target", imp.Login()),
			)
			return domain.User{}, ErrImpersonationTargetMissing
		}
		log.Error("failed to resolve impersonation target", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("impersonation authorized",
		slog.String("requester", requester.Login),
		slog.String("target", target.Login),
	)
	return target, nil
}
