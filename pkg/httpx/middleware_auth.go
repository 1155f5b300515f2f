package httpx

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/collab/pkg/slogx"
)

// TokenAuthMiddleware enforces the shared-secret gate: every request must
// carry "Authorization: token <secret>". This is a single static service
// credential, not per-user authentication; per-user policy is evaluated
// downstream.
//
// A missing or malformed header is a 400, a well-formed header with the
// wrong secret is a 401. On success the request is forwarded unchanged.
func TokenAuthMiddleware(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeAuthError(w, http.StatusBadRequest, "missing authorization header")
				return
			}

			value, ok := strings.CutPrefix(authz, "token ")
			if !ok {
				writeAuthError(w, http.StatusBadRequest, "invalid authorization header")
				return
			}

			if subtle.ConstantTimeCompare([]byte(value), []byte(secret)) != 1 {
				log.Warn("request with invalid api token")
				writeAuthError(w, http.StatusUnauthorized, "invalid authorization token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, code int, desc string) {
	WriteJSON(w, code, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
