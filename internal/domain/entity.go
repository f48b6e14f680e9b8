package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base holds identity and audit timestamps shared by every persisted entity.
// ID is assigned by the writer before the entity is staged; CreatedAt and
// UpdatedAt are stamped by the persistence layer when changes are saved.
// UpdatedAt >= CreatedAt always holds for persisted rows.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewBase returns a Base with a freshly generated ID and zero timestamps.
func NewBase() Base {
	return Base{ID: uuid.New()}
}

// Completion is the two-state completion machine embedded by Task,
// DailyTask and ActionItem. CompletedAt is non-nil exactly when IsCompleted.
type Completion struct {
	IsCompleted bool       `db:"is_completed"`
	CompletedAt *time.Time `db:"completed_at"`
}

// MarkCompleted moves to Completed. Calling it again re-stamps CompletedAt.
func (c *Completion) MarkCompleted(now time.Time) {
	c.IsCompleted = true
	c.CompletedAt = &now
}

// MarkIncomplete moves to Incomplete and clears CompletedAt. Idempotent.
func (c *Completion) MarkIncomplete() {
	c.IsCompleted = false
	c.CompletedAt = nil
}

// Consistent reports whether CompletedAt agrees with IsCompleted.
func (c Completion) Consistent() bool {
	return (c.CompletedAt != nil) == c.IsCompleted
}
