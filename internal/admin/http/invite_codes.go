package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/service"
	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/aussiebroadwan/collab/pkg/httpx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

type InviteCodesHandler struct {
	InviteCodeService *service.InviteCodeService
}

// HandleList returns the invite codes owned by a user.
func (h *InviteCodesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	codes, err := h.InviteCodeService.ListInviteCodes(ctx, r.PathValue("id"))
	if err != nil {
		log.Error("failed to list invite codes", "err", err)
		writeServerError(w)
		return
	}

	out := make([]adminsdk.InviteCode, 0, len(codes))
	for _, ic := range codes {
		out = append(out, toAPIInviteCode(ic))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate generates a new invite code owned by the user in the path.
func (h *InviteCodesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.CreateInviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	_, err := h.InviteCodeService.CreateInviteCode(ctx, r.PathValue("id"), req.AllowedUsageCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCount):
			writeBadRequest(w, "allowed_usage_count must be non-negative")
		case errors.Is(err, service.ErrUserNotFound):
			writeNotFound(w, "user not found")
		case errors.Is(err, service.ErrCodeCollision):
			httpx.WriteJSON(w, http.StatusConflict, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeConflict,
				ErrorDescription: "invite code collision, retry the request",
			})
		default:
			log.Error("failed to create invite code", "err", err)
			writeServerError(w)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleUpdate overwrites the remaining count of an invite code.
func (h *InviteCodesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.UpdateInviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	err := h.InviteCodeService.SetRemainingCount(ctx, r.PathValue("code"), req.RemainingCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCount):
			writeBadRequest(w, "remaining_count must be non-negative")
		case errors.Is(err, service.ErrInviteCodeNotFound):
			writeNotFound(w, "invite code not found")
		default:
			log.Error("failed to update invite code", "err", err)
			writeServerError(w)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func toAPIInviteCode(ic domain.InviteCode) adminsdk.InviteCode {
	return adminsdk.InviteCode{
		Code:              ic.Code,
		OwnerUserID:       ic.OwnerUserID,
		AllowedUsageCount: ic.AllowedUsageCount,
		RemainingCount:    ic.RemainingCount,
	}
}
