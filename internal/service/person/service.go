// Package person implements the networking contacts use cases.
package person

import (
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type uowFactory interface {
	New() domain.UnitOfWork
}

const entityName = "Person"

var people = crud.Entity[domain.Person, Response]{
	Name:       entityName,
	Repo:       func(uow domain.UnitOfWork) domain.Repository[domain.Person] { return uow.People() },
	ToResponse: ToResponse,
}

// Service provides person management operations.
type Service struct {
	uows uowFactory
	log  *slog.Logger
}

// NewService creates a new Person service.
func NewService(log *slog.Logger, uows uowFactory) *Service {
	return &Service{
		uows: uows,
		log:  log.With("service", "person"),
	}
}
