package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/collab/internal/admin/service"
	"github.com/aussiebroadwan/collab/pkg/httpx"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers. Everything is an
// explicit constructor/field dependency; handlers never pull state out of
// hidden globals.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger *slog.Logger

	UserService       *service.UserService
	InviteCodeService *service.InviteCodeService
	TokenService      *service.TokenService
}

func NewRouter(apiToken string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		logger: logger,
	}

	// Every route sits behind the access log and the shared-secret gate,
	// the panic report included.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.TokenAuthMiddleware(apiToken),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerInviteCodes()
	r.registerAccessTokens()
	r.registerPanic()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.HandleFunc("GET /users", h.HandleList)
	r.Mux.HandleFunc("POST /users", h.HandleCreate)
	r.Mux.HandleFunc("GET /users/{login}", h.HandleGet)
	r.Mux.HandleFunc("PUT /users/{id}", h.HandleUpdate)
	r.Mux.HandleFunc("DELETE /users/{id}", h.HandleDelete)
}

func (r *Router) registerInviteCodes() {
	h := &InviteCodesHandler{InviteCodeService: r.InviteCodeService}

	r.Mux.HandleFunc("GET /users/{id}/invite_codes", h.HandleList)
	r.Mux.HandleFunc("POST /users/{id}/invite_codes", h.HandleCreate)
	r.Mux.HandleFunc("PUT /invite_codes/{code}", h.HandleUpdate)
}

func (r *Router) registerAccessTokens() {
	h := &AccessTokensHandler{TokenService: r.TokenService}

	r.Mux.HandleFunc("GET /users/{login}/access_tokens", h.HandleCreate)
}

func (r *Router) registerPanic() {
	r.Mux.HandleFunc("POST /panic", HandlePanicReport)
}
