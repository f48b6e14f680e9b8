package crudtest

import (
	"context"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
)

// NewUnitOfWork returns a UnitOfWorkMock whose transaction, save and close
// operations succeed. Repository accessors are left for the test to set.
func NewUnitOfWork() *UnitOfWorkMock {
	return &UnitOfWorkMock{
		SaveChangesFunc:         func(context.Context) (int64, error) { return 1, nil },
		BeginTransactionFunc:    func(context.Context) error { return nil },
		CommitTransactionFunc:   func(context.Context) error { return nil },
		RollbackTransactionFunc: func(context.Context) error { return nil },
		CloseFunc:               func(context.Context) error { return nil },
	}
}

// Factory returns a FactoryMock that always hands out uow.
func Factory(uow domain.UnitOfWork) *FactoryMock {
	return &FactoryMock{NewFunc: func() domain.UnitOfWork { return uow }}
}

// Stage returns an AddFunc that echoes its argument.
func Stage[T any]() func(*T) *T {
	return func(e *T) *T { return e }
}

// Noop returns an Update/Delete func that does nothing.
func Noop[T any]() func(*T) {
	return func(*T) {}
}

// NotFound returns a GetByIDFunc that always reports entity as missing.
func NotFound[T any](entity string) func(context.Context, uuid.UUID) (*T, error) {
	return func(_ context.Context, id uuid.UUID) (*T, error) {
		return nil, domain.NewNotFoundError(entity, id)
	}
}
