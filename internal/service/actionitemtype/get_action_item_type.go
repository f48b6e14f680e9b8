package actionitemtype

import (
	"context"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// GetByID returns the action item type with id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving the action item type", func(uow domain.UnitOfWork) (Response, error) {
		return types.Get(ctx, uow, id)
	})
}

// GetAll returns every action item type, the seeded ones included.
func (s *Service) GetAll(ctx context.Context) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving action item types", func(uow domain.UnitOfWork) (ListResponse, error) {
		return types.List(ctx, uow)
	})
}
