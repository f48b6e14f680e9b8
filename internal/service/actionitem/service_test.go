package actionitem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
	"github.com/nebula/nebula-backend/internal/service/crud/crudtest"
)

var (
	fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	home     = &domain.ActionItemType{Base: domain.Base{ID: domain.ActionItemTypeHomeID}, Name: "Home"}
	work     = &domain.ActionItemType{Base: domain.Base{ID: domain.ActionItemTypeWorkID}, Name: "Work"}
)

type fixture struct {
	svc   *Service
	uow   *crudtest.UnitOfWorkMock
	items *crudtest.RepositoryMock[domain.ActionItem]
	types *crudtest.RepositoryMock[domain.ActionItemType]
}

// newFixture knows the seeded Home and Work types.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		uow:   crudtest.NewUnitOfWork(),
		items: &crudtest.RepositoryMock[domain.ActionItem]{},
		types: &crudtest.RepositoryMock[domain.ActionItemType]{
			GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.ActionItemType, error) {
				switch id {
				case home.ID:
					return home, nil
				case work.ID:
					return work, nil
				}
				return nil, domain.NewNotFoundError("ActionItemType", id)
			},
		},
	}
	f.uow.ActionItemsFunc = func() domain.Repository[domain.ActionItem] { return f.items }
	f.uow.ActionItemTypesFunc = func() domain.Repository[domain.ActionItemType] { return f.types }
	f.svc = NewService(slog.Default(), crudtest.Factory(f.uow))
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestCreate_LoadsTypeName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.items.AddFunc = crudtest.Stage[domain.ActionItem]()

	res := f.svc.Create(context.Background(), CreateCommand{Text: "call plumber", ActionItemTypeID: home.ID})

	require.True(t, res.Success, "messages: %v", res.ErrorMessages)
	assert.Equal(t, home.ID, res.Data.ActionItemTypeID)
	assert.Equal(t, "Home", res.Data.ActionItemTypeName)
	assert.False(t, res.Data.IsCompleted)
	assert.Equal(t, 1, f.uow.SaveChangesCalls())
}

func TestCreate_TypeRequired(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	res := f.svc.Create(context.Background(), CreateCommand{Text: ""})

	assert.Equal(t, crud.CodeValidation, res.ErrorCode)
	assert.Equal(t, []string{"Text is required.", "ActionItemTypeId is required."}, res.ErrorMessages)
	assert.Empty(t, f.types.GetByIDCalls())
	assert.Empty(t, f.items.AddCalls())
}

func TestCreate_UnknownTypeIsValidationFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	missing := uuid.New()

	res := f.svc.Create(context.Background(), CreateCommand{Text: "x", ActionItemTypeID: missing})

	assert.Equal(t, crud.CodeValidation, res.ErrorCode)
	assert.Equal(t, []string{fmt.Sprintf("ActionItemType with ID '%s' not found.", missing)}, res.ErrorMessages)
	assert.Equal(t, 0, f.uow.SaveChangesCalls())
}

func TestCreate_TypeLookupFails(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.types.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.ActionItemType, error) {
		return nil, errors.New("connection refused")
	}

	res := f.svc.Create(context.Background(), CreateCommand{Text: "x", ActionItemTypeID: home.ID})

	assert.Equal(t, crud.CodeInternal, res.ErrorCode)
	assert.ErrorContains(t, res.Err, "connection refused")
}

func TestUpdate_ChangesTypeAndName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	item := &domain.ActionItem{Base: domain.NewBase(), Text: "x", ActionItemTypeID: home.ID, ActionItemTypeName: home.Name}
	f.items.ExistsFunc = func(context.Context, uuid.UUID) (bool, error) { return true, nil }
	f.items.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.ActionItem, error) { return item, nil }
	f.items.UpdateFunc = crudtest.Noop[domain.ActionItem]()

	res := f.svc.Update(context.Background(), item.ID, UpdateCommand{Text: "y", ActionItemTypeID: work.ID})

	require.True(t, res.Success, "messages: %v", res.ErrorMessages)
	assert.Equal(t, "y", res.Data.Text)
	assert.Equal(t, work.ID, res.Data.ActionItemTypeID)
	assert.Equal(t, "Work", res.Data.ActionItemTypeName)
	assert.Equal(t, 1, f.uow.CommitTransactionCalls())
}

func TestUpdate_NotFoundBeforeFieldRules(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.items.ExistsFunc = func(context.Context, uuid.UUID) (bool, error) { return false, nil }

	res := f.svc.Update(context.Background(), uuid.New(), UpdateCommand{})

	assert.Equal(t, crud.CodeNotFound, res.ErrorCode)
	assert.Empty(t, f.types.GetByIDCalls())
	assert.Equal(t, 1, f.uow.RollbackTransactionCalls())
}

func TestMarkCompleted(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	item := &domain.ActionItem{Base: domain.NewBase(), Text: "x", ActionItemTypeID: home.ID}
	f.items.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.ActionItem, error) { return item, nil }
	f.items.UpdateFunc = crudtest.Noop[domain.ActionItem]()

	res := f.svc.MarkCompleted(context.Background(), item.ID)

	require.True(t, res.Success)
	assert.True(t, res.Data.IsCompleted)
	require.NotNil(t, res.Data.CompletedAt)
	assert.Equal(t, fixedNow, *res.Data.CompletedAt)

	res = f.svc.MarkIncomplete(context.Background(), item.ID)

	require.True(t, res.Success)
	assert.False(t, res.Data.IsCompleted)
	assert.Nil(t, res.Data.CompletedAt)
}

func TestGetByDate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.items.FindFunc = func(context.Context, domain.Predicate) ([]*domain.ActionItem, error) {
		return []*domain.ActionItem{}, nil
	}

	res := f.svc.GetByDate(context.Background(), fixedNow)

	require.True(t, res.Success)
	assert.Equal(t, 0, res.Data.TotalCount)
	assert.NotNil(t, res.Data.Items)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.items.GetByIDFunc = crudtest.NotFound[domain.ActionItem](entityName)

	res := f.svc.Delete(context.Background(), uuid.New())

	assert.Equal(t, crud.CodeNotFound, res.ErrorCode)
}

func TestMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	cmd := CreateCommand{Text: "pay rent", ActionItemTypeID: home.ID}

	resp := ToResponse(FromCreateCommand(cmd, home))

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, cmd.Text, resp.Text)
	assert.Equal(t, cmd.ActionItemTypeID, resp.ActionItemTypeID)
	assert.Equal(t, "Home", resp.ActionItemTypeName)
}
