package dailytask

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// GetByID returns the daily task with id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving the daily task", func(uow domain.UnitOfWork) (Response, error) {
		return dailyTasks.Get(ctx, uow, id)
	})
}

// GetAll returns every daily task.
func (s *Service) GetAll(ctx context.Context) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving daily tasks", func(uow domain.UnitOfWork) (ListResponse, error) {
		return dailyTasks.List(ctx, uow)
	})
}

// GetByDate returns the daily tasks created on the UTC day of date.
func (s *Service) GetByDate(ctx context.Context, date time.Time) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving daily tasks by date", func(uow domain.UnitOfWork) (ListResponse, error) {
		return dailyTasks.ListByDate(ctx, uow, date)
	})
}
