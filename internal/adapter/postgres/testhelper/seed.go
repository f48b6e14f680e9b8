package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nebula/nebula-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedPerson inserts a person with a unique name and returns it.
func SeedPerson(t *testing.T, pool *pgxpool.Pool) domain.Person {
	t.Helper()

	ts := now()
	p := domain.Person{
		Base:      domain.Base{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		FirstName: "Test",
		LastName:  "Person-" + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO people (id, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.FirstName, p.LastName, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}

	return p
}

// SeedTask inserts an incomplete task created at createdAt.
func SeedTask(t *testing.T, pool *pgxpool.Pool, createdAt time.Time) domain.Task {
	t.Helper()

	task := domain.Task{
		Base: domain.Base{ID: uuid.New(), CreatedAt: createdAt, UpdatedAt: createdAt},
		Text: "task " + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, text, is_completed, completed_at, created_at, updated_at)
		 VALUES ($1, $2, false, NULL, $3, $4)`,
		task.ID, task.Text, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedActionItemType inserts an action item type with a unique name.
func SeedActionItemType(t *testing.T, pool *pgxpool.Pool) domain.ActionItemType {
	t.Helper()

	ts := now()
	typ := domain.ActionItemType{
		Base: domain.Base{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		Name: "Type " + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO action_item_types (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		typ.ID, typ.Name, typ.CreatedAt, typ.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActionItemType: %v", err)
	}

	return typ
}

// SeedActionItem inserts an incomplete action item of the given type.
func SeedActionItem(t *testing.T, pool *pgxpool.Pool, typeID uuid.UUID) domain.ActionItem {
	t.Helper()

	ts := now()
	item := domain.ActionItem{
		Base:             domain.Base{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		Text:             "item " + uniqueSuffix(),
		ActionItemTypeID: typeID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO action_items (id, text, is_completed, action_item_type_id, created_at, updated_at)
		 VALUES ($1, $2, false, $3, $4, $5)`,
		item.ID, item.Text, item.ActionItemTypeID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActionItem: %v", err)
	}

	return item
}
