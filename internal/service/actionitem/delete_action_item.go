package actionitem

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Delete removes the action item with id and returns its last state.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "deleting the action item", func(uow domain.UnitOfWork) (Response, error) {
		resp, err := actionItems.Delete(ctx, uow, id)
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item deleted", slog.String("action_item_id", id.String()))
		return resp, nil
	})
}
