package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Response is the outbound representation of a task.
type Response struct {
	ID          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ListResponse is a collection of tasks.
type ListResponse = crud.ListResponse[Response]

func ToResponse(t *domain.Task) Response {
	return Response{
		ID:          t.ID,
		Text:        t.Text,
		IsCompleted: t.IsCompleted,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromCreateCommand builds a new incomplete task with a fresh ID.
func FromCreateCommand(cmd CreateCommand) *domain.Task {
	return &domain.Task{
		Base: domain.NewBase(),
		Text: cmd.Text,
	}
}

func ApplyUpdate(t *domain.Task, cmd UpdateCommand) {
	t.Text = cmd.Text
}
