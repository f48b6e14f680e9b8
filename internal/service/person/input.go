package person

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// CreateCommand holds the parameters for creating a person.
type CreateCommand struct {
	FirstName string `json:"firstName" validate:"required,max=100" label:"First name"`
	LastName  string `json:"lastName"  validate:"required,max=100" label:"Last name"`
}

// UpdateCommand holds the parameters for updating a person.
type UpdateCommand struct {
	FirstName string `json:"firstName" validate:"required,max=100" label:"First name"`
	LastName  string `json:"lastName"  validate:"required,max=100" label:"Last name"`
}

func validateNames(r *crud.Rules, candidate *domain.Person) {
	r.Name("firstName", "First name", candidate.FirstName)
	r.Name("lastName", "Last name", candidate.LastName)
}

// findByName returns the people whose full name matches exactly.
func findByName(ctx context.Context, uow domain.UnitOfWork, candidate *domain.Person) ([]*domain.Person, error) {
	matches, err := uow.People().Find(ctx, sq.Eq{"first_name": candidate.FirstName, "last_name": candidate.LastName})
	if err != nil {
		return nil, fmt.Errorf("find people by name: %w", err)
	}
	return matches, nil
}

// validateCreate checks every field rule and the full-name uniqueness rule,
// collecting all violations.
func validateCreate(ctx context.Context, uow domain.UnitOfWork, cmd CreateCommand) error {
	var r crud.Rules
	candidate := &domain.Person{FirstName: cmd.FirstName, LastName: cmd.LastName}

	validateNames(&r, candidate)
	if r.Valid() {
		matches, err := findByName(ctx, uow, candidate)
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			r.Add("name", fmt.Sprintf("A person with the name '%s' already exists.", candidate.FullName()))
		}
	}

	return r.Err()
}

// validateUpdate asserts the person exists, then checks the field rules and
// that no other person already has the new full name.
func validateUpdate(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID, cmd UpdateCommand) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "Person ID is required.")
	}

	exists, err := uow.People().Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check person exists: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError(entityName, id)
	}

	var r crud.Rules
	candidate := &domain.Person{FirstName: cmd.FirstName, LastName: cmd.LastName}

	validateNames(&r, candidate)
	if r.Valid() {
		matches, err := findByName(ctx, uow, candidate)
		if err != nil {
			return err
		}
		for _, p := range matches {
			if p.ID != id {
				r.Add("name", fmt.Sprintf("Another person with the name '%s' already exists.", candidate.FullName()))
				break
			}
		}
	}

	return r.Err()
}
