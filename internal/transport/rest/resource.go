package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/service/crud"
)

// crudService is the service surface every resource exposes.
type crudService[C, U, R any] interface {
	GetByID(ctx context.Context, id uuid.UUID) crud.Result[R]
	GetAll(ctx context.Context) crud.Result[crud.ListResponse[R]]
	Create(ctx context.Context, cmd C) crud.Result[R]
	Update(ctx context.Context, id uuid.UUID, cmd U) crud.Result[R]
	Delete(ctx context.Context, id uuid.UUID) crud.Result[R]
}

// completionService is implemented by resources with completion state.
type completionService[R any] interface {
	GetByDate(ctx context.Context, date time.Time) crud.Result[crud.ListResponse[R]]
	MarkCompleted(ctx context.Context, id uuid.UUID) crud.Result[R]
	MarkIncomplete(ctx context.Context, id uuid.UUID) crud.Result[R]
}

// Resource serves the REST routes of one entity under <base>/<path>.
type Resource[C, U, R any] struct {
	path       string
	svc        crudService[C, U, R]
	completion completionService[R]
	idOf       func(R) uuid.UUID
	log        *slog.Logger
}

// NewResource creates the handler set for svc mounted at path
// ("tasks", "networking/persons"). idOf extracts the id used in the
// Location header of a created resource.
func NewResource[C, U, R any](log *slog.Logger, path string, svc crudService[C, U, R], idOf func(R) uuid.UUID) *Resource[C, U, R] {
	return &Resource[C, U, R]{
		path: path,
		svc:  svc,
		idOf: idOf,
		log:  log.With("handler", path),
	}
}

// NewCompletableResource is NewResource plus the completion and by-date
// routes.
func NewCompletableResource[C, U, R any, S interface {
	crudService[C, U, R]
	completionService[R]
}](log *slog.Logger, path string, svc S, idOf func(R) uuid.UUID) *Resource[C, U, R] {
	res := NewResource[C, U, R](log, path, svc, idOf)
	res.completion = svc
	return res
}

// Register mounts the routes on mux below base.
func (h *Resource[C, U, R]) Register(mux *http.ServeMux, base string) {
	prefix := base + "/" + h.path

	mux.HandleFunc("GET "+prefix, h.list)
	mux.HandleFunc("POST "+prefix, h.create(prefix))
	mux.HandleFunc("GET "+prefix+"/{id}", h.get)
	mux.HandleFunc("PUT "+prefix+"/{id}", h.update)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.delete)

	if h.completion != nil {
		mux.HandleFunc("POST "+prefix+"/{id}/complete", h.setCompletion(true))
		mux.HandleFunc("POST "+prefix+"/{id}/incomplete", h.setCompletion(false))
	}
}

func (h *Resource[C, U, R]) list(w http.ResponseWriter, r *http.Request) {
	date, byDate, err := queryDate(r)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	if byDate {
		if h.completion == nil {
			writeError(w, h.log, r, newBadRequest("Filtering by date is not supported for this resource."))
			return
		}
		writeResult(w, h.completion.GetByDate(r.Context(), date), http.StatusOK)
		return
	}

	writeResult(w, h.svc.GetAll(r.Context()), http.StatusOK)
}

func (h *Resource[C, U, R]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	writeResult(w, h.svc.GetByID(r.Context(), id), http.StatusOK)
}

func (h *Resource[C, U, R]) create(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd C
		if err := decodeBody(w, r, &cmd); err != nil {
			writeError(w, h.log, r, err)
			return
		}

		res := h.svc.Create(r.Context(), cmd)
		if res.Success {
			w.Header().Set("Location", prefix+"/"+h.idOf(*res.Data).String())
		}
		writeResult(w, res, http.StatusCreated)
	}
}

func (h *Resource[C, U, R]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	var cmd U
	if err := decodeBody(w, r, &cmd); err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeResult(w, h.svc.Update(r.Context(), id, cmd), http.StatusOK)
}

func (h *Resource[C, U, R]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	writeResult(w, h.svc.Delete(r.Context(), id), http.StatusNoContent)
}

func (h *Resource[C, U, R]) setCompletion(completed bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, h.log, r, err)
			return
		}

		if completed {
			writeResult(w, h.completion.MarkCompleted(r.Context(), id), http.StatusOK)
			return
		}
		writeResult(w, h.completion.MarkIncomplete(r.Context(), id), http.StatusOK)
	}
}
