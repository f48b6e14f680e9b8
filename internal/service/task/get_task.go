package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// GetByID returns the task with id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving the task", func(uow domain.UnitOfWork) (Response, error) {
		return tasks.Get(ctx, uow, id)
	})
}

// GetAll returns every task.
func (s *Service) GetAll(ctx context.Context) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving tasks", func(uow domain.UnitOfWork) (ListResponse, error) {
		return tasks.List(ctx, uow)
	})
}

// GetByDate returns the tasks created on the UTC day of date.
func (s *Service) GetByDate(ctx context.Context, date time.Time) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving tasks by date", func(uow domain.UnitOfWork) (ListResponse, error) {
		return tasks.ListByDate(ctx, uow, date)
	})
}
