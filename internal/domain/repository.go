package domain

import (
	"context"

	"github.com/google/uuid"
)

// Predicate is a filter translated to the storage query language.
// squirrel.Eq, squirrel.And, squirrel.GtOrEq and friends satisfy it.
type Predicate interface {
	ToSql() (string, []any, error)
}

// Repository is the CRUD gateway for one entity type.
//
// Lookups signal absence with ErrNotFound, never with a nil entity.
// Add, Update and Delete only stage a change; nothing is durable until the
// owning UnitOfWork saves.
type Repository[T any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Find(ctx context.Context, pred Predicate) ([]*T, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	Add(entity *T) *T
	Update(entity *T)
	Delete(entity *T)
	// DeleteByID looks the entity up and stages its removal. It reports
	// false when there is nothing to delete. It does not save.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// UnitOfWork is the transactional boundary of one logical operation.
// It is not safe for concurrent use.
type UnitOfWork interface {
	People() Repository[Person]
	Tasks() Repository[Task]
	DailyTasks() Repository[DailyTask]
	ActionItems() Repository[ActionItem]
	ActionItemTypes() Repository[ActionItemType]

	// SaveChanges flushes every staged change atomically and returns the
	// number of affected rows.
	SaveChanges(ctx context.Context) (int64, error)

	BeginTransaction(ctx context.Context) error
	// CommitTransaction saves pending changes and commits. On failure the
	// transaction is rolled back before the error is returned.
	CommitTransaction(ctx context.Context) error
	// RollbackTransaction is a no-op when no transaction is active.
	RollbackTransaction(ctx context.Context) error

	// Close releases the open transaction, if any. Safe to call repeatedly.
	Close(ctx context.Context) error
}
