package actionitem

import (
	"context"
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Create validates cmd and stores a new incomplete action item. The
// referenced type must exist.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) crud.Result[Response] {
	return crud.Execute(ctx, s.uows, s.log, "creating the action item", func(uow domain.UnitOfWork) (Response, error) {
		typ, err := validateCreate(ctx, uow, cmd)
		if err != nil {
			return Response{}, err
		}

		a := uow.ActionItems().Add(FromCreateCommand(cmd, typ))
		if _, err := uow.SaveChanges(ctx); err != nil {
			return Response{}, err
		}

		s.log.InfoContext(ctx, "action item created",
			slog.String("action_item_id", a.ID.String()),
			slog.String("action_item_type_id", typ.ID.String()),
		)
		return ToResponse(a), nil
	})
}
