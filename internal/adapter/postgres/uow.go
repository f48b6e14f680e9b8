package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nebula/nebula-backend/internal/domain"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

// op is one staged write. build runs at flush time so that changes made to
// the entity after staging are persisted.
type op struct {
	kind   opKind
	entity string
	id     uuid.UUID
	build  func(now time.Time) sq.Sqlizer
	// missingRef, if set, reports a foreign key violation on insert or update.
	missingRef func() error
}

// session is the state shared by a UnitOfWork and its repositories.
type session struct {
	pool    Pool
	txm     *TxManager
	now     func() time.Time
	tx      pgx.Tx
	pending []op
	closed  bool
}

func (s *session) querier() (Querier, error) {
	if s.closed {
		return nil, domain.ErrUnitOfWorkClosed
	}
	if s.tx != nil {
		return s.tx, nil
	}
	return s.pool, nil
}

func (s *session) stage(o op) {
	if s.closed {
		return
	}
	s.pending = append(s.pending, o)
}

// flush executes ops in staging order and returns the total affected rows.
func (s *session) flush(ctx context.Context, q Querier, ops []op) (int64, error) {
	now := s.now()

	var total int64
	for _, o := range ops {
		query, args, err := o.build(now).ToSql()
		if err != nil {
			return 0, fmt.Errorf("build %s %s: %w", o.entity, o.id, err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			if o.kind == opDelete {
				return 0, mapDeleteError(err, o.entity, o.id)
			}
			return 0, mapWriteError(err, o.entity, o.id, o.missingRef)
		}

		if o.kind != opInsert && tag.RowsAffected() == 0 {
			return 0, domain.NewNotFoundError(o.entity, o.id)
		}
		total += tag.RowsAffected()
	}

	return total, nil
}

// UnitOfWork is the PostgreSQL domain.UnitOfWork. Without an explicit
// transaction every SaveChanges runs in its own short transaction.
type UnitOfWork struct {
	s *session

	people          *Repo[domain.Person]
	tasks           *Repo[domain.Task]
	dailyTasks      *Repo[domain.DailyTask]
	actionItems     *Repo[domain.ActionItem]
	actionItemTypes *Repo[domain.ActionItemType]
}

var _ domain.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over pool.
func NewUnitOfWork(pool Pool) *UnitOfWork {
	return newUnitOfWork(pool, defaultClock)
}

func newUnitOfWork(pool Pool, now func() time.Time) *UnitOfWork {
	s := &session{pool: pool, txm: NewTxManager(pool), now: now}
	return &UnitOfWork{
		s:               s,
		people:          newRepo(PersonSchema, s),
		tasks:           newRepo(TaskSchema, s),
		dailyTasks:      newRepo(DailyTaskSchema, s),
		actionItems:     newRepo(ActionItemSchema, s),
		actionItemTypes: newRepo(ActionItemTypeSchema, s),
	}
}

// Timestamps are truncated to what timestamptz stores.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// People returns the Person repository.
func (u *UnitOfWork) People() domain.Repository[domain.Person] {
	return u.people
}

// Tasks returns the Task repository.
func (u *UnitOfWork) Tasks() domain.Repository[domain.Task] {
	return u.tasks
}

// DailyTasks returns the DailyTask repository.
func (u *UnitOfWork) DailyTasks() domain.Repository[domain.DailyTask] {
	return u.dailyTasks
}

// ActionItems returns the ActionItem repository.
func (u *UnitOfWork) ActionItems() domain.Repository[domain.ActionItem] {
	return u.actionItems
}

// ActionItemTypes returns the ActionItemType repository.
func (u *UnitOfWork) ActionItemTypes() domain.Repository[domain.ActionItemType] {
	return u.actionItemTypes
}

// SaveChanges flushes all staged writes atomically. Inside an explicit
// transaction the writes join it; otherwise a transaction is opened and
// committed around them. Staged writes are discarded whatever the outcome.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	s := u.s
	if s.closed {
		return 0, domain.ErrUnitOfWorkClosed
	}
	if len(s.pending) == 0 {
		return 0, nil
	}

	ops := s.pending
	s.pending = nil

	if s.tx != nil {
		return s.flush(ctx, s.tx, ops)
	}

	var affected int64
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.flush(ctx, QuerierFromCtx(ctx, s.pool), ops)
		affected = n
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// BeginTransaction opens an explicit transaction. Reads and saves of this
// unit of work run inside it until commit or rollback.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	s := u.s
	if s.closed {
		return domain.ErrUnitOfWorkClosed
	}
	if s.tx != nil {
		return domain.ErrTransactionActive
	}

	tx, err := s.txm.Begin(ctx)
	if err != nil {
		return err
	}
	s.tx = tx
	return nil
}

// CommitTransaction saves staged writes and commits. On any failure the
// transaction is rolled back and closed.
func (u *UnitOfWork) CommitTransaction(ctx context.Context) error {
	s := u.s
	if s.closed {
		return domain.ErrUnitOfWorkClosed
	}
	if s.tx == nil {
		return domain.ErrNoActiveTransaction
	}

	tx := s.tx
	if _, err := u.SaveChanges(ctx); err != nil {
		s.tx = nil
		return abort(ctx, tx, err)
	}

	s.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RollbackTransaction discards staged writes and rolls back. No-op without
// an active transaction.
func (u *UnitOfWork) RollbackTransaction(ctx context.Context) error {
	s := u.s
	if s.tx == nil {
		return nil
	}

	tx := s.tx
	s.tx = nil
	s.pending = nil
	if err := tx.Rollback(ctx); err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// Close rolls back an open transaction and makes the unit of work unusable.
func (u *UnitOfWork) Close(ctx context.Context) error {
	s := u.s
	if s.closed {
		return nil
	}

	err := u.RollbackTransaction(ctx)
	s.closed = true
	s.pending = nil
	return err
}

// UnitOfWorkFactory opens a fresh UnitOfWork per logical operation.
type UnitOfWorkFactory struct {
	pool Pool
	now  func() time.Time
}

// NewUnitOfWorkFactory creates a factory over pool.
func NewUnitOfWorkFactory(pool Pool) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{pool: pool, now: defaultClock}
}

// New returns a new, independent UnitOfWork.
func (f *UnitOfWorkFactory) New() domain.UnitOfWork {
	return newUnitOfWork(f.pool, f.now)
}
