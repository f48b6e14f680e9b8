package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// MarkCompleted completes the task with id. Completing an already completed
// task re-stamps CompletedAt.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, true, "completing the task")
}

// MarkIncomplete reopens the task with id.
func (s *Service) MarkIncomplete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, false, "reopening the task")
}

func (s *Service) setCompletion(ctx context.Context, id uuid.UUID, completed bool, action string) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, action, func(uow domain.UnitOfWork) (Response, error) {
		resp, err := crud.SetCompletion(ctx, uow, tasks, id, completed, s.now())
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "task completion changed",
			slog.String("task_id", id.String()),
			slog.Bool("completed", completed),
		)
		return resp, nil
	})
}
