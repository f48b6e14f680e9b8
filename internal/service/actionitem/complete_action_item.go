package actionitem

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// MarkCompleted completes the action item with id. Completing an already
// completed action item re-stamps CompletedAt.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, true, "completing the action item")
}

// MarkIncomplete reopens the action item with id.
func (s *Service) MarkIncomplete(ctx context.Context, id uuid.UUID) crud.Result[Response] {
	return s.setCompletion(ctx, id, false, "reopening the action item")
}

func (s *Service) setCompletion(ctx context.Context, id uuid.UUID, completed bool, action string) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, action, func(uow domain.UnitOfWork) (Response, error) {
		resp, err := crud.SetCompletion(ctx, uow, actionItems, id, completed, s.now())
		if err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item completion changed",
			slog.String("action_item_id", id.String()),
			slog.Bool("completed", completed),
		)
		return resp, nil
	})
}
