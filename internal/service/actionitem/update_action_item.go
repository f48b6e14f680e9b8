package actionitem

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Update validates cmd and rewrites the text and type of the action item
// with id.
func (s *Service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "updating the action item", func(uow domain.UnitOfWork) (Response, error) {
		a, err := crud.InTransaction(ctx, uow, func() (*domain.ActionItem, error) {
			typ, err := validateUpdate(ctx, uow, id, cmd)
			if err != nil {
				return nil, err
			}

			a, err := uow.ActionItems().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			ApplyUpdate(a, cmd, typ)
			uow.ActionItems().Update(a)
			return a, nil
		})
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item updated", slog.String("action_item_id", id.String()))
		return ToResponse(a), nil
	})
}
