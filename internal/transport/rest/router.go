package rest

import (
	"net/http"
)

// Registrar mounts a group of routes below a base path.
type Registrar interface {
	Register(mux *http.ServeMux, base string)
}

// NewRouter builds the API mux: health probes at the root and every
// resource below basePath.
func NewRouter(basePath string, health *HealthHandler, resources ...Registrar) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	for _, res := range resources {
		res.Register(mux, basePath)
	}

	return mux
}
