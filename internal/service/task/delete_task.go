package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Delete removes the task with id and returns its last state.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "deleting the task", func(uow domain.UnitOfWork) (Response, error) {
		resp, err := tasks.Delete(ctx, uow, id)
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "task deleted", slog.String("task_id", id.String()))
		return resp, nil
	})
}
