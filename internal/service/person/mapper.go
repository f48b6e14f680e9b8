package person

import (
	"time"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

// Response is the outbound representation of a person.
type Response struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListResponse is a collection of people.
type ListResponse = crud.ListResponse[Response]

// ToResponse copies p into a detached Response.
func ToResponse(p *domain.Person) Response {
	return Response{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromCreateCommand builds a new person with a fresh ID. Timestamps are left
// for the persistence layer.
func FromCreateCommand(cmd CreateCommand) *domain.Person {
	return &domain.Person{
		Base:      domain.NewBase(),
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	}
}

// ApplyUpdate copies the command fields onto p.
func ApplyUpdate(p *domain.Person, cmd UpdateCommand) {
	p.FirstName = cmd.FirstName
	p.LastName = cmd.LastName
}
