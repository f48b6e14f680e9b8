package crud

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
)

// ListResponse wraps a collection. TotalCount is always len(Items).
type ListResponse[R any] struct {
	Items      []R `json:"items"`
	TotalCount int `json:"totalCount"`
}

// NewListResponse maps entities with toResponse and counts them.
func NewListResponse[E, R any](entities []*E, toResponse func(*E) R) ListResponse[R] {
	items := make([]R, len(entities))
	for i, e := range entities {
		items[i] = toResponse(e)
	}
	return ListResponse[R]{Items: items, TotalCount: len(items)}
}

// Entity binds one entity type to its repository and response mapper so the
// operations every service shares can be written once.
type Entity[E, R any] struct {
	Name       string
	Repo       func(domain.UnitOfWork) domain.Repository[E]
	ToResponse func(*E) R
}

// Get returns the response of the entity with id.
func (e Entity[E, R]) Get(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID) (R, error) {
	entity, err := e.Repo(uow).GetByID(ctx, id)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("get %s %s: %w", e.Name, id, err)
	}
	return e.ToResponse(entity), nil
}

// List returns every entity.
func (e Entity[E, R]) List(ctx context.Context, uow domain.UnitOfWork) (ListResponse[R], error) {
	entities, err := e.Repo(uow).GetAll(ctx)
	if err != nil {
		return ListResponse[R]{}, fmt.Errorf("list %s: %w", e.Name, err)
	}
	return NewListResponse(entities, e.ToResponse), nil
}

// ListByDate returns the entities created on the UTC calendar day of date.
func (e Entity[E, R]) ListByDate(ctx context.Context, uow domain.UnitOfWork, date time.Time) (ListResponse[R], error) {
	entities, err := e.Repo(uow).Find(ctx, CreatedOn(date))
	if err != nil {
		return ListResponse[R]{}, fmt.Errorf("list %s by date: %w", e.Name, err)
	}
	return NewListResponse(entities, e.ToResponse), nil
}

// Delete removes the entity with id and returns its last state.
func (e Entity[E, R]) Delete(ctx context.Context, uow domain.UnitOfWork, id uuid.UUID) (R, error) {
	var zero R

	repo := e.Repo(uow)
	entity, err := repo.GetByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s %s: %w", e.Name, id, err)
	}

	repo.Delete(entity)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return zero, fmt.Errorf("delete %s %s: %w", e.Name, id, err)
	}
	return e.ToResponse(entity), nil
}

// Completable is satisfied by pointers to entities embedding domain.Completion.
type Completable[E any] interface {
	*E
	MarkCompleted(now time.Time)
	MarkIncomplete()
}

// SetCompletion moves the entity with id into the requested completion
// state and saves it. Both transitions are idempotent.
func SetCompletion[E any, P Completable[E], R any](
	ctx context.Context,
	uow domain.UnitOfWork,
	e Entity[E, R],
	id uuid.UUID,
	completed bool,
	now time.Time,
) (R, error) {
	var zero R

	repo := e.Repo(uow)
	entity, err := repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if completed {
		P(entity).MarkCompleted(now)
	} else {
		P(entity).MarkIncomplete()
	}

	repo.Update(entity)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return zero, err
	}
	return e.ToResponse(entity), nil
}

// StartOfDay truncates t to midnight UTC of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreatedOn matches rows whose created_at lies in the half-open window
// [start of day, start of next day) in UTC.
func CreatedOn(date time.Time) domain.Predicate {
	start := StartOfDay(date)
	return sq.And{
		sq.GtOrEq{"created_at": start},
		sq.Lt{"created_at": start.AddDate(0, 0, 1)},
	}
}

// Clock returns the current time as stored by the database.
func Clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
