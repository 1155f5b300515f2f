package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/collab/internal/admin/service"
	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/aussiebroadwan/collab/pkg/httpx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

type AccessTokensHandler struct {
	TokenService *service.TokenService
}

// HandleCreate issues an access token for the user in the path, sealed
// under the public key in the query. An admin may name another user via
// the impersonate parameter to receive a token for that identity instead.
func (h *AccessTokensHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	publicKey := r.URL.Query().Get("public_key")
	if publicKey == "" {
		writeBadRequest(w, "public_key is required")
		return
	}

	imp := service.NoImpersonation()
	if target := r.URL.Query().Get("impersonate"); target != "" {
		imp = service.ImpersonateLogin(target)
	}

	issued, err := h.TokenService.CreateAccessToken(ctx, r.PathValue("login"), publicKey, imp)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeNotFound(w, "user not found")
		case errors.Is(err, service.ErrImpersonationDenied):
			httpx.WriteJSON(w, http.StatusUnauthorized, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeUnauthorized,
				ErrorDescription: "you do not have permission to impersonate other users",
			})
		case errors.Is(err, service.ErrImpersonationTargetMissing):
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeUnprocessable,
				ErrorDescription: "user " + r.URL.Query().Get("impersonate") + " does not exist",
			})
		case errors.Is(err, service.ErrInvalidPublicKey):
			writeBadRequest(w, "malformed public key")
		default:
			log.Error("failed to create access token", "err", err)
			writeServerError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.CreateAccessTokenResponse{
		UserID:               issued.UserID,
		EncryptedAccessToken: issued.EncryptedAccessToken,
	})
}
