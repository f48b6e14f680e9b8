// Package actionitemtype manages the categories action items are filed under.
package actionitemtype

import (
	"log/slog"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type uowFactory interface {
	New() domain.UnitOfWork
}

const entityName = "ActionItemType"

var types = crud.Entity[domain.ActionItemType, Response]{
	Name:       entityName,
	Repo:       func(uow domain.UnitOfWork) domain.Repository[domain.ActionItemType] { return uow.ActionItemTypes() },
	ToResponse: ToResponse,
}

// Service provides action item type management operations.
type Service struct {
	uows uowFactory
	log  *slog.Logger
}

// NewService creates a new ActionItemType service.
func NewService(log *slog.Logger, uows uowFactory) *Service {
	return &Service{
		uows: uows,
		log:  log.With("service", "actionitemtype"),
	}
}
