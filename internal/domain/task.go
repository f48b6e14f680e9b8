package domain

import "github.com/google/uuid"

// Task is a free-form to-do item.
type Task struct {
	Base
	Completion
	Text string `db:"text"`
}

// DailyTask is a to-do item scoped to the day it was created on.
type DailyTask struct {
	Base
	Completion
	Text string `db:"text"`
}

// ActionItem is a to-do item classified by an ActionItemType.
// ActionItemTypeName is read-only: it is loaded together with the row and
// never written back.
type ActionItem struct {
	Base
	Completion
	Text               string    `db:"text"`
	ActionItemTypeID   uuid.UUID `db:"action_item_type_id"`
	ActionItemTypeName string    `db:"action_item_type_name"`
}

// ActionItemType classifies action items ("Home", "Work", ...). A type that is
// still referenced by an action item cannot be deleted.
type ActionItemType struct {
	Base
	Name string `db:"name"`
}

// Seeded action item types, created by the initial migration.
var (
	ActionItemTypeHomeID = uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	ActionItemTypeWorkID = uuid.MustParse("b2c3d4e5-f6a7-8901-bcde-f12345678901")
)
