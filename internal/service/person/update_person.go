package person

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Update validates cmd and rewrites the person with id. Validation reads and
// the write share one transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "updating the person", func(uow domain.UnitOfWork) (Response, error) {
		p, err := crud.InTransaction(ctx, uow, func() (*domain.Person, error) {
			if err := validateUpdate(ctx, uow, id, cmd); err != nil {
				return nil, err
			}

			p, err := uow.People().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			ApplyUpdate(p, cmd)
			uow.People().Update(p)
			return p, nil
		})
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "person updated", slog.String("person_id", id.String()))
		return ToResponse(p), nil
	})
}
