package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
	"github.com/aussiebroadwan/collab/internal/admin/service"
	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/aussiebroadwan/collab/pkg/httpx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList returns every user in the directory.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		writeServerError(w)
		return
	}

	out := make([]adminsdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAPIUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate registers a new user.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Login) == "" {
		writeBadRequest(w, "login is required")
		return
	}

	user, err := h.UserService.CreateUser(ctx, req.Login, req.Admin)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			httpx.WriteJSON(w, http.StatusConflict, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeConflict,
				ErrorDescription: "login already taken",
			})
			return
		}
		log.Error("failed to create user", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIUser(user))
}

// HandleGet fetches a user by provider login.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.UserService.GetUserByLogin(ctx, r.PathValue("login"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		log.Error("failed to fetch user", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIUser(user))
}

// HandleUpdate overwrites a user's admin flag.
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := h.UserService.SetAdmin(ctx, r.PathValue("id"), req.Admin); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		log.Error("failed to update user", "err", err)
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleDelete removes a user.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.UserService.DeleteUser(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		log.Error("failed to delete user", "err", err)
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func toAPIUser(u domain.User) adminsdk.User {
	return adminsdk.User{
		ID:    u.ID,
		Login: u.Login,
		Admin: u.Admin,
	}
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}

func writeNotFound(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusNotFound, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeNotFound,
		ErrorDescription: desc,
	})
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, adminsdk.ErrorResponse{
		Error:            adminsdk.ErrorCodeServerError,
		ErrorDescription: "internal server error",
	})
}
