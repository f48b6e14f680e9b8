package actionitemtype

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Delete removes the action item type with id. A type still referenced by
// an action item is refused with CONFLICT.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "deleting the action item type", func(uow domain.UnitOfWork) (Response, error) {
		resp, err := types.Delete(ctx, uow, id)
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item type deleted", slog.String("action_item_type_id", id.String()))
		return resp, nil
	})
}
