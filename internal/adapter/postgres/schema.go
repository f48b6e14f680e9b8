package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nebula/nebula-backend/internal/domain"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Schema maps an entity type onto its table.
type Schema[T any] struct {
	// Entity is the human readable entity name used in errors.
	Entity string
	Table  string
	// Columns is the SELECT list. Its aliases must match the entity's db tags.
	Columns []string
	// Meta exposes the identity and audit fields of an entity.
	Meta func(*T) *domain.Base
	// Values returns the writable columns other than id and the timestamps.
	Values func(*T) map[string]any
	// MissingReference, if set, builds the error returned when a write names
	// a row that does not exist.
	MissingReference func(*T) error
}

var baseColumns = []string{"id", "created_at", "updated_at"}

func columns(extra ...string) []string {
	return append(append([]string{}, baseColumns...), extra...)
}

// PersonSchema maps domain.Person onto the people table.
var PersonSchema = Schema[domain.Person]{
	Entity:  "Person",
	Table:   "people",
	Columns: columns("first_name", "last_name"),
	Meta:    func(p *domain.Person) *domain.Base { return &p.Base },
	Values: func(p *domain.Person) map[string]any {
		return map[string]any{
			"first_name": p.FirstName,
			"last_name":  p.LastName,
		}
	},
}

// TaskSchema maps domain.Task onto the tasks table.
var TaskSchema = Schema[domain.Task]{
	Entity:  "Task",
	Table:   "tasks",
	Columns: columns("text", "is_completed", "completed_at"),
	Meta:    func(t *domain.Task) *domain.Base { return &t.Base },
	Values: func(t *domain.Task) map[string]any {
		return map[string]any{
			"text":         t.Text,
			"is_completed": t.IsCompleted,
			"completed_at": t.CompletedAt,
		}
	},
}

// DailyTaskSchema maps domain.DailyTask onto the daily_tasks table.
var DailyTaskSchema = Schema[domain.DailyTask]{
	Entity:  "DailyTask",
	Table:   "daily_tasks",
	Columns: columns("text", "is_completed", "completed_at"),
	Meta:    func(t *domain.DailyTask) *domain.Base { return &t.Base },
	Values: func(t *domain.DailyTask) map[string]any {
		return map[string]any{
			"text":         t.Text,
			"is_completed": t.IsCompleted,
			"completed_at": t.CompletedAt,
		}
	},
}

// ActionItemSchema maps domain.ActionItem onto the action_items table.
// The type name is loaded eagerly with every read.
var ActionItemSchema = Schema[domain.ActionItem]{
	Entity: "ActionItem",
	Table:  "action_items",
	Columns: columns("text", "is_completed", "completed_at", "action_item_type_id",
		"(SELECT t.name FROM action_item_types t WHERE t.id = action_items.action_item_type_id) AS action_item_type_name"),
	Meta: func(a *domain.ActionItem) *domain.Base { return &a.Base },
	Values: func(a *domain.ActionItem) map[string]any {
		return map[string]any{
			"text":                a.Text,
			"is_completed":        a.IsCompleted,
			"completed_at":        a.CompletedAt,
			"action_item_type_id": a.ActionItemTypeID,
		}
	},
	MissingReference: func(a *domain.ActionItem) error {
		return domain.NewValidationError("actionItemTypeId",
			fmt.Sprintf("ActionItemType with ID '%s' not found.", a.ActionItemTypeID))
	},
}

// ActionItemTypeSchema maps domain.ActionItemType onto the action_item_types table.
var ActionItemTypeSchema = Schema[domain.ActionItemType]{
	Entity:  "ActionItemType",
	Table:   "action_item_types",
	Columns: columns("name"),
	Meta:    func(t *domain.ActionItemType) *domain.Base { return &t.Base },
	Values: func(t *domain.ActionItemType) map[string]any {
		return map[string]any{"name": t.Name}
	},
}
