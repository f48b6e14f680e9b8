package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula/nebula-backend/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockUoW(t *testing.T) (*UnitOfWork, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return newUnitOfWork(mock, func() time.Time { return fixedNow }), mock
}

func TestUnitOfWork_SaveChanges_NothingStaged(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)

	n, err := uow.SaveChanges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_InsertStampsEntity(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO people").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	p := uow.People().Add(&domain.Person{FirstName: "Ada", LastName: "Lovelace"})
	require.NotEqual(t, uuid.Nil, p.ID)
	assert.True(t, p.CreatedAt.IsZero(), "timestamps are stamped on save, not on Add")

	n, err := uow.SaveChanges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Equal(t, fixedNow, p.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_KeepsAssignedID(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO action_item_types").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	id := uuid.New()
	typ := uow.ActionItemTypes().Add(&domain.ActionItemType{Base: domain.Base{ID: id}, Name: "Errands"})

	_, err := uow.SaveChanges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, id, typ.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_MultipleOpsOneTransaction(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE daily_tasks").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM action_items").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	uow.Tasks().Add(&domain.Task{Text: "a"})
	daily := &domain.DailyTask{Base: domain.NewBase(), Text: "b"}
	uow.DailyTasks().Update(daily)
	uow.ActionItems().Delete(&domain.ActionItem{Base: domain.NewBase()})

	n, err := uow.SaveChanges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, fixedNow, daily.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_UpdateMissingRow(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasks").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	task := &domain.Task{Base: domain.NewBase(), Text: "gone"}
	uow.Tasks().Update(task)

	_, err := uow.SaveChanges(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Task", nf.Entity)
	assert.Equal(t, task.ID, nf.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_DeleteReferencedRow(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM action_item_types").
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	uow.ActionItemTypes().Delete(&domain.ActionItemType{Base: domain.Base{ID: domain.ActionItemTypeHomeID}})

	_, err := uow.SaveChanges(context.Background())

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_MissingTypeIsValidation(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	typeID := uuid.New()

	tests := []struct {
		name  string
		sql   string
		stage func(*UnitOfWork)
	}{
		{
			name: "insert",
			sql:  "INSERT INTO action_items",
			stage: func(u *UnitOfWork) {
				u.ActionItems().Add(&domain.ActionItem{Text: "orphan", ActionItemTypeID: typeID})
			},
		},
		{
			name: "update",
			sql:  "UPDATE action_items",
			stage: func(u *UnitOfWork) {
				u.ActionItems().Update(&domain.ActionItem{Base: domain.NewBase(), Text: "moved", ActionItemTypeID: typeID})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uow, mock := newMockUoW(t)
			mock.ExpectBegin()
			mock.ExpectExec(tt.sql).WillReturnError(fkErr)
			mock.ExpectRollback()

			tt.stage(uow)
			_, err := uow.SaveChanges(context.Background())

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, domain.ErrNotFound)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, []string{fmt.Sprintf("ActionItemType with ID '%s' not found.", typeID)}, ve.Messages())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_SaveChanges_ForeignKeyWithoutSchemaMessage(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	uow.Tasks().Add(&domain.Task{Text: "t"})
	_, err := uow.SaveChanges(context.Background())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_SaveChanges_DiscardsPendingAfterFailure(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO people").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	uow.People().Add(&domain.Person{FirstName: "A", LastName: "B"})

	_, err := uow.SaveChanges(context.Background())
	require.Error(t, err)

	n, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_ExplicitTransaction_Commit(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO tasks").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, uow.BeginTransaction(ctx))
	uow.Tasks().Add(&domain.Task{Text: "first"})
	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	uow.Tasks().Add(&domain.Task{Text: "second"})
	require.NoError(t, uow.CommitTransaction(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginTwice(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()

	require.NoError(t, uow.BeginTransaction(ctx))
	err := uow.BeginTransaction(ctx)

	assert.ErrorIs(t, err, domain.ErrTransactionActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	t.Parallel()

	uow, _ := newMockUoW(t)

	err := uow.CommitTransaction(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoActiveTransaction)
}

func TestUnitOfWork_RollbackWithoutTransaction(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)

	assert.NoError(t, uow.RollbackTransaction(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	uow.People().Add(&domain.Person{FirstName: "A", LastName: "B"})
	require.NoError(t, uow.RollbackTransaction(ctx))

	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitFailureRollsBack(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE people").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	uow.People().Update(&domain.Person{Base: domain.NewBase(), FirstName: "A", LastName: "B"})

	err := uow.CommitTransaction(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The transaction is gone; a second commit has nothing to commit.
	assert.ErrorIs(t, uow.CommitTransaction(ctx), domain.ErrNoActiveTransaction)
	assert.NoError(t, uow.RollbackTransaction(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CloseRollsBackAndDisables(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	require.NoError(t, uow.Close(ctx))
	require.NoError(t, uow.Close(ctx), "Close is idempotent")

	_, err := uow.People().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnitOfWorkClosed)

	uow.People().Add(&domain.Person{FirstName: "A", LastName: "B"})
	_, err = uow.SaveChanges(ctx)
	assert.ErrorIs(t, err, domain.ErrUnitOfWorkClosed)

	assert.ErrorIs(t, uow.BeginTransaction(ctx), domain.ErrUnitOfWorkClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Exists(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM tasks WHERE id = $1 )")).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := uow.Tasks().Exists(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	id := uuid.New()
	mock.ExpectQuery("SELECT id, created_at, updated_at, first_name, last_name FROM people WHERE id = \\$1").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at", "first_name", "last_name"}).
			AddRow(fixedNow, fixedNow, "Grace", "Hopper"))

	p, err := uow.People().GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Grace", p.FirstName)
	assert.Equal(t, "Hopper", p.LastName)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	id := uuid.New()
	mock.ExpectQuery("FROM people").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at", "first_name", "last_name"}))

	p, err := uow.People().GetByID(context.Background(), id)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Person with ID '"+id.String()+"' not found.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_DeleteByID_Missing(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectQuery("FROM action_item_types").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at", "name"}))

	ok, err := uow.ActionItemTypes().DeleteByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, ok)

	n, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "nothing staged")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Find_TranslatesPredicate(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (created_at >= $1 AND created_at < $2) ORDER BY created_at, id")).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "name"}).
			AddRow(day, "Home"))

	types, err := uow.ActionItemTypes().Find(context.Background(), sq.And{
		sq.GtOrEq{"created_at": day},
		sq.Lt{"created_at": day.AddDate(0, 0, 1)},
	})

	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Home", types[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetAll_Empty(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	mock.ExpectQuery("FROM people ORDER BY created_at, id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at", "first_name", "last_name"}))

	people, err := uow.People().GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ReadsJoinExplicitTransaction(t *testing.T) {
	t.Parallel()

	uow, mock := newMockUoW(t)
	ctx := context.Background()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	ok, err := uow.People().Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, uow.RollbackTransaction(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWorkFactory_NewIsIndependent(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	f := NewUnitOfWorkFactory(mock)
	a, b := f.New(), f.New()

	a.People().Add(&domain.Person{FirstName: "A", LastName: "B"})

	n, err := b.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
