package dailytask

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// MarkCompleted completes the daily task with id. Completing an already completed
// daily task re-stamps CompletedAt.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, true, "completing the daily task")
}

// MarkIncomplete reopens the daily task with id.
func (s *Service) MarkIncomplete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, false, "reopening the daily task")
}

func (s *Service) setCompletion(ctx context.Context, id uuid.UUID, completed bool, action string) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, action, func(uow domain.UnitOfWork) (Response, error) {
		resp, err := crud.SetCompletion(ctx, uow, dailyTasks, id, completed, s.now())
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "daily task completion changed",
			slog.String("daily_task_id", id.String()),
			slog.Bool("completed", completed),
		)
		return resp, nil
	})
}
