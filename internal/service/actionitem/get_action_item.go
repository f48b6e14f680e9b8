package actionitem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// GetByID returns the action item with id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving the action item", func(uow domain.UnitOfWork) (Response, error) {
		return actionItems.Get(ctx, uow, id)
	})
}

// GetAll returns every action item.
func (s *Service) GetAll(ctx context.Context) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving action items", func(uow domain.UnitOfWork) (ListResponse, error) {
		return actionItems.List(ctx, uow)
	})
}

// GetByDate returns the action items created on the UTC day of date.
func (s *Service) GetByDate(ctx context.Context, date time.Time) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving action items by date", func(uow domain.UnitOfWork) (ListResponse, error) {
		return actionItems.ListByDate(ctx, uow, date)
	})
}
