package middleware

import (
	"net/http"
	"slices"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws with the first one outermost, so Chain(a, b)(h)
// behaves as a(b(h)). Nil entries are skipped, which lets the caller leave
// optional layers such as rate limiting out of the stack.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
