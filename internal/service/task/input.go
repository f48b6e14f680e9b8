package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// CreateCommand holds the parameters for creating a task.
type CreateCommand struct {
	Text string `json:"text" validate:"required,max=2000" label:"Text"`
}

// UpdateCommand holds the parameters for updating a task.
type UpdateCommand struct {
	Text string `json:"text" validate:"required,max=2000" label:"Text"`
}

func validateCreate(cmd CreateCommand) error {
	var r crud.Rules
	r.Text("text", "Text", cmd.Text, crud.MaxTextLength)
	return r.Err()
}

func validateUpdate(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID, cmd UpdateCommand) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "Task ID is required.")
	}

	exists, err := uow.Tasks().Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check task exists: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError(entityName, id)
	}

	var r crud.Rules
	r.Text("text", "Text", cmd.Text, crud.MaxTextLength)
	return r.Err()
}
