package actionitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// CreateCommand holds the parameters for creating an action item.
type CreateCommand struct {
	Text             string    `json:"text"             validate:"required,max=2000" label:"Text"`
	ActionItemTypeID uuid.UUID `json:"actionItemTypeId" validate:"required"          label:"ActionItemTypeId"`
}

// UpdateCommand holds the parameters for updating an action item.
type UpdateCommand struct {
	Text             string    `json:"text"             validate:"required,max=2000" label:"Text"`
	ActionItemTypeID uuid.UUID `json:"actionItemTypeId" validate:"required"          label:"ActionItemTypeId"`
}

// checkFields applies the text rule and resolves the referenced type. The
// returned type is nil whenever r holds a violation.
func checkFields(ctx context.Context, uow domain.UnitOfWork, r *crud.Rules, text string, typeID uuid.UUID) (*domain.ActionItemType, error) {
	r.Text("text", "Text", text, crud.MaxTextLength)

	if typeID == uuid.Nil {
		r.Add("actionItemTypeId", "ActionItemTypeId is required.")
		return nil, nil
	}

	typ, err := uow.ActionItemTypes().GetByID(ctx, typeID)
	if errors.Is(err, domain.ErrNotFound) {
		r.Add("actionItemTypeId", fmt.Sprintf("ActionItemType with ID '%s' not found.", typeID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load action item type: %w", err)
	}
	return typ, nil
}

func validateCreate(ctx context.Context, uow domain.UnitOfWork, cmd CreateCommand) (*domain.ActionItemType, error) {
	var r crud.Rules

	typ, err := checkFields(ctx, uow, &r, cmd.Text, cmd.ActionItemTypeID)
	if err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return typ, nil
}

func validateUpdate(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID, cmd UpdateCommand) (*domain.ActionItemType, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "ActionItem ID is required.")
	}

	exists, err := uow.ActionItems().Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check action item exists: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError(entityName, id)
	}

	var r crud.Rules

	typ, err := checkFields(ctx, uow, &r, cmd.Text, cmd.ActionItemTypeID)
	if err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return typ, nil
}
