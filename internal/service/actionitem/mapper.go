package actionitem

import (
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Response is the outbound representation of an action item. The type name
// is denormalized from the referenced ActionItemType.
type Response struct {
	ID                 uuid.UUID  `json:"id"`
	Text               string     `json:"text"`
	IsCompleted        bool       `json:"isCompleted"`
	CompletedAt        *time.Time `json:"completedAt"`
	ActionItemTypeID   uuid.UUID  `json:"actionItemTypeId"`
	ActionItemTypeName string     `json:"actionItemTypeName"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ListResponse is a collection of action items.
type ListResponse = crud.ListResponse[Response]

func ToResponse(a *domain.ActionItem) Response {
	return Response{
		ID:                 a.ID,
		Text:               a.Text,
		IsCompleted:        a.IsCompleted,
		CompletedAt:        a.CompletedAt,
		ActionItemTypeID:   a.ActionItemTypeID,
		ActionItemTypeName: a.ActionItemTypeName,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromCreateCommand builds a new incomplete action item of type typ.
func FromCreateCommand(cmd CreateCommand, typ *domain.ActionItemType) *domain.ActionItem {
	return &domain.ActionItem{
		Base:               domain.NewBase(),
		Text:               cmd.Text,
		ActionItemTypeID:   typ.ID,
		ActionItemTypeName: typ.Name,
	}
}

// ApplyUpdate copies the command onto a and refreshes the type name.
func ApplyUpdate(a *domain.ActionItem, cmd UpdateCommand, typ *domain.ActionItemType) {
	a.Text = cmd.Text
	a.ActionItemTypeID = typ.ID
	a.ActionItemTypeName = typ.Name
}
