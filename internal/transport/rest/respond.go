package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nebula/nebula-backend/internal/service/crud"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// statusFor maps a failure code to its HTTP status.
func statusFor(code crud.Code) int {
	switch code {
	case crud.CodeValidation:
		return http.StatusBadRequest
	case crud.CodeNotFound:
		return http.StatusNotFound
	case crud.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeResult writes res with okStatus on success. A 204 success has no body.
func writeResult[T any](w http.ResponseWriter, res crud.Result[T], okStatus int) {
	if !res.Success {
		writeJSON(w, statusFor(res.ErrorCode), res)
		return
	}
	if okStatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, okStatus, res)
}

// writeError answers a request rejected before reaching a service.
func writeError(w http.ResponseWriter, log *slog.Logger, r *http.Request, err error) {
	var br *badRequest
	if errors.As(err, &br) {
		log.DebugContext(r.Context(), "request rejected", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, crud.Fail[struct{}](crud.CodeValidation, err, br.messages...))
		return
	}

	log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, crud.Fail[struct{}](crud.CodeInternal, err, "An unexpected error occurred."))
}
