package actionitemtype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// CreateCommand holds the parameters for creating an action item type.
type CreateCommand struct {
	Name string `json:"name" validate:"required,max=200" label:"Name"`
}

// UpdateCommand holds the parameters for renaming an action item type.
type UpdateCommand struct {
	Name string `json:"name" validate:"required,max=200" label:"Name"`
}

// checkName applies the field rules and reports a clash with any type other
// than self.
func checkName(ctx context.Context, uow domain.UnitOfWork, r *crud.Rules, name string, self uuid.UUID) error {
	if !r.Text("name", "Name", name, crud.MaxTypeNameLength) {
		return nil
	}

	matches, err := uow.ActionItemTypes().Find(ctx, sq.Eq{"name": name})
	if err != nil {
		return fmt.Errorf("find action item types by name: %w", err)
	}
	for _, t := range matches {
		if t.ID != self {
			r.Add("name", fmt.Sprintf("An action item type named '%s' already exists.", name))
			break
		}
	}
	return nil
}

func validateCreate(ctx context.Context, uow domain.UnitOfWork, cmd CreateCommand) error {
	var r crud.Rules
	if err := checkName(ctx, uow, &r, cmd.Name, uuid.Nil); err != nil {
		return err
	}
	return r.Err()
}

func validateUpdate(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID, cmd UpdateCommand) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "ActionItemType ID is required.")
	}

	exists, err := uow.ActionItemTypes().Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check action item type exists: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError(entityName, id)
	}

	var r crud.Rules
	if err := checkName(ctx, uow, &r, cmd.Name, id); err != nil {
		return err
	}
	return r.Err()
}
