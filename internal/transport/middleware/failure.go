package middleware

import (
	"encoding/json"
	"net/http"
)

// failure mirrors the service result envelope so clients parse middleware
// rejections the same way as handler failures.
type failure struct {
	Success       bool     `json:"success"`
	Data          any      `json:"data"`
	ErrorMessages []string `json:"errorMessages"`
	ErrorCode     string   `json:"errorCode"`
}

func writeFailure(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(failure{ //nolint:errcheck
		ErrorMessages: []string{message},
		ErrorCode:     code,
	})
}
