package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nebula/nebula-backend/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			// Referenced row is missing.
			return fmt.Errorf("%s %s references a missing row: %w", entity, id, domain.ErrValidation)
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// mapDeleteError is mapError for DELETE statements, where a foreign key
// violation means the row is still referenced.
func mapDeleteError(err error, entity string, id uuid.UUID) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%s %s is still referenced: %w", entity, id, domain.ErrConflict)
	}
	return mapError(err, entity, id)
}

// mapWriteError is mapError for INSERT and UPDATE statements. A foreign key
// violation is reported through missingRef when the schema provides one.
func mapWriteError(err error, entity string, id uuid.UUID, missingRef func() error) error {
	var pgErr *pgconn.PgError
	if missingRef != nil && errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return missingRef()
	}
	return mapError(err, entity, id)
}
