package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// GetByID returns the person with id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving the person", func(uow domain.UnitOfWork) (Response, error) {
		return people.Get(ctx, uow, id)
	})
}

// GetAll returns every person.
func (s *Service) GetAll(ctx context.Context) crud.Result[ListResponse] {
	return crud.Execute(ctx, s.uows, s.log, "retrieving people", func(uow domain.UnitOfWork) (ListResponse, error) {
		return people.List(ctx, uow)
	})
}
