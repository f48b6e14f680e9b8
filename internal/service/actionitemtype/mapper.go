package actionitemtype

import (
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type Response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListResponse = crud.ListResponse[Response]

func ToResponse(t *domain.ActionItemType) Response {
	return Response{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromCreateCommand(cmd CreateCommand) *domain.ActionItemType {
	return &domain.ActionItemType{Base: domain.NewBase(), Name: cmd.Name}
}

func ApplyUpdate(t *domain.ActionItemType, cmd UpdateCommand) {
	t.Name = cmd.Name
}
