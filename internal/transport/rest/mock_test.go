package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nebula/nebula-backend/internal/service/crud"
)

// serviceMock implements crudService and completionService for any
// command/response types.
type serviceMock[C, U, R any] struct {
	mock.Mock
}

func (m *serviceMock[C, U, R]) GetByID(ctx context.Context, id uuid.UUID) crud.Result[R] {
	return m.Called(ctx, id).Get(0).(crud.Result[R])
}

func (m *serviceMock[C, U, R]) GetAll(ctx context.Context) crud.Result[crud.ListResponse[R]] {
	return m.Called(ctx).Get(0).(crud.Result[crud.ListResponse[R]])
}

func (m *serviceMock[C, U, R]) GetByDate(ctx context.Context, date time.Time) crud.Result[crud.ListResponse[R]] {
	return m.Called(ctx, date).Get(0).(crud.Result[crud.ListResponse[R]])
}

func (m *serviceMock[C, U, R]) Create(ctx context.Context, cmd C) crud.Result[R] {
	return m.Called(ctx, cmd).Get(0).(crud.Result[R])
}

func (m *serviceMock[C, U, R]) Update(ctx context.Context, id uuid.UUID, cmd U) crud.Result[R] {
	return m.Called(ctx, id, cmd).Get(0).(crud.Result[R])
}

func (m *serviceMock[C, U, R]) Delete(ctx context.Context, id uuid.UUID) crud.Result[R] {
	return m.Called(ctx, id).Get(0).(crud.Result[R])
}

func (m *serviceMock[C, U, R]) MarkCompleted(ctx context.Context, id uuid.UUID) crud.Result[R] {
	return m.Called(ctx, id).Get(0).(crud.Result[R])
}

func (m *serviceMock[C, U, R]) MarkIncomplete(ctx context.Context, id uuid.UUID) crud.Result[R] {
	return m.Called(ctx, id).Get(0).(crud.Result[R])
}
