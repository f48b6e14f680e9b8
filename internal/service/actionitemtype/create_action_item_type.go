package actionitemtype

import (
	"context"
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Create validates cmd and stores a new action item type.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "creating the action item type", func(uow domain.UnitOfWork) (Response, error) {
		if err := validateCreate(ctx, uow, cmd); err != nil {
			return Response{}, err
		}

		t := uow.ActionItemTypes().Add(FromCreateCommand(cmd))
		if _, err := uow.SaveChanges(ctx); err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item type created", slog.String("action_item_type_id", t.ID.String()))
		return ToResponse(t), nil
	})
}
