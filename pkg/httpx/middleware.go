package httpx

import "net/http"

// Middleware wraps an http.Handler with additional behaviour. Each
// middleware receives the downstream handler and decides whether to
// short-circuit or continue the chain.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so that the first middleware listed is
// the outermost (runs first on the way in).
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
