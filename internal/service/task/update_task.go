package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Update validates cmd and rewrites the text of the task with id. Completion
// state is left untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "updating the task", func(uow domain.UnitOfWork) (Response, error) {
		t, err := crud.InTransaction(ctx, uow, func() (*domain.Task, error) {
			if err := validateUpdate(ctx, uow, id, cmd); err != nil {
				return nil, err
			}

			t, err := uow.Tasks().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			ApplyUpdate(t, cmd)
			uow.Tasks().Update(t)
			return t, nil
		})
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "task updated", slog.String("task_id", id.String()))
		return ToResponse(t), nil
	})
}
