package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/nebula/nebula-backend/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a logged 500
// with an INTERNAL failure body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					writeFailure(w, http.StatusInternalServerError, "INTERNAL", "An unexpected error occurred.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
