package actionitemtype

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Update renames the action item type with id. Items of this type report the
// new name on their next read.
func (s *Service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "updating the action item type", func(uow domain.UnitOfWork) (Response, error) {
		t, err := crud.InTransaction(ctx, uow, func() (*domain.ActionItemType, error) {
			if err := validateUpdate(ctx, uow, id, cmd); err != nil {
				return nil, err
			}

			t, err := uow.ActionItemTypes().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			ApplyUpdate(t, cmd)
			uow.ActionItemTypes().Update(t)
			return t, nil
		})
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item type updated", slog.String("action_item_type_id", id.String()))
		return ToResponse(t), nil
	})
}
