package task

import (
	"context"
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Create validates cmd and stores a new incomplete task.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "creating the task", func(uow domain.UnitOfWork) (Response, error) {
		if err := validateCreate(cmd); err != nil {
			return Response{}, err
		}

		t := uow.Tasks().Add(FromCreateCommand(cmd))
		if _, err := uow.SaveChanges(ctx); err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "task created", slog.String("task_id", t.ID.String()))
		return ToResponse(t), nil
	})
}
