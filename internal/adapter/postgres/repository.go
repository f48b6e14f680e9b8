package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
)

// Repo is the generic PostgreSQL implementation of domain.Repository.
// Reads go straight to the database (inside the open transaction, if any);
// writes are staged on the owning session until it saves.
type Repo[T any] struct {
	schema  Schema[T]
	session *session
}

var _ domain.Repository[domain.Person] = (*Repo[domain.Person])(nil)

func newRepo[T any](schema Schema[T], s *session) *Repo[T] {
	return &Repo[T]{schema: schema, session: s}
}

func (r *Repo[T]) selectAll() sq.SelectBuilder {
	return psql.Select(r.schema.Columns...).From(r.schema.Table)
}

// GetByID returns the entity with the given id or a *domain.NotFoundError.
func (r *Repo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	q, err := r.session.querier()
	if err != nil {
		return nil, err
	}

	query, args, err := r.selectAll().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", r.schema.Entity, err)
	}

	var entity T
	if err := pgxscan.Get(ctx, q, &entity, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(r.schema.Entity, id)
		}
		return nil, mapError(err, r.schema.Entity, id)
	}

	return &entity, nil
}

// GetAll returns every entity ordered by creation time.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.find(ctx, nil)
}

// Find returns the entities matching pred, ordered by creation time.
// A nil pred matches everything.
func (r *Repo[T]) Find(ctx context.Context, pred domain.Predicate) ([]*T, error) {
	return r.find(ctx, pred)
}

func (r *Repo[T]) find(ctx context.Context, pred domain.Predicate) ([]*T, error) {
	q, err := r.session.querier()
	if err != nil {
		return nil, err
	}

	b := r.selectAll()
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", r.schema.Entity, err)
	}

	entities := make([]*T, 0)
	if err := pgxscan.Select(ctx, q, &entities, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Entity, err)
	}

	return entities, nil
}

// Exists reports whether a row with the given id is present.
func (r *Repo[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q, err := r.session.querier()
	if err != nil {
		return false, err
	}

	query, args, err := psql.Select("1").
		From(r.schema.Table).
		Where(sq.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s exists: %w", r.schema.Entity, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError(err, r.schema.Entity, id)
	}

	return exists, nil
}

// Add stages an insert. An entity without an id gets a fresh one.
func (r *Repo[T]) Add(entity *T) *T {
	meta := r.schema.Meta(entity)
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}

	r.session.stage(op{
		kind:   opInsert,
		entity: r.schema.Entity,
		id:     meta.ID,
		build: func(now time.Time) sq.Sqlizer {
			meta.CreatedAt = now
			meta.UpdatedAt = now

			values := r.schema.Values(entity)
			values["id"] = meta.ID
			values["created_at"] = now
			values["updated_at"] = now
			return psql.Insert(r.schema.Table).SetMap(values)
		},
		missingRef: r.missingRef(entity),
	})

	return entity
}

// Update stages an update of every writable column.
func (r *Repo[T]) Update(entity *T) {
	meta := r.schema.Meta(entity)

	r.session.stage(op{
		kind:   opUpdate,
		entity: r.schema.Entity,
		id:     meta.ID,
		build: func(now time.Time) sq.Sqlizer {
			meta.UpdatedAt = now

			values := r.schema.Values(entity)
			values["updated_at"] = now
			return psql.Update(r.schema.Table).SetMap(values).Where(sq.Eq{"id": meta.ID})
		},
		missingRef: r.missingRef(entity),
	})
}

func (r *Repo[T]) missingRef(entity *T) func() error {
	if r.schema.MissingReference == nil {
		return nil
	}
	return func() error { return r.schema.MissingReference(entity) }
}

// Delete stages removal of the entity.
func (r *Repo[T]) Delete(entity *T) {
	id := r.schema.Meta(entity).ID

	r.session.stage(op{
		kind:   opDelete,
		entity: r.schema.Entity,
		id:     id,
		build: func(time.Time) sq.Sqlizer {
			return psql.Delete(r.schema.Table).Where(sq.Eq{"id": id})
		},
	})
}

// DeleteByID loads the entity and stages its removal.
// Returns false when no such entity exists.
func (r *Repo[T]) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	entity, err := r.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	r.Delete(entity)
	return true, nil
}
