package person

import (
	"context"
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Create validates cmd and stores a new person.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "creating the person", func(uow domain.UnitOfWork) (Response, error) {
		if err := validateCreate(ctx, uow, cmd); err != nil {
			return Response{}, err
		}

		p := uow.People().Add(FromCreateCommand(cmd))
		if _, err := uow.SaveChanges(ctx); err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "person created", slog.String("person_id", p.ID.String()))
		return ToResponse(p), nil
	})
}
