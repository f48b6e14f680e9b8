// Package actionitem implements the use cases for typed to-do items.
package actionitem

import (
	"log/slog"
	"time"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type uowFactory interface {
	New() domain.UnitOfWork
}

const entityName = "ActionItem"

var actionItems = crud.Entity[domain.ActionItem, Response]{
	Name:       entityName,
	Repo:       func(uow domain.UnitOfWork) domain.Repository[domain.ActionItem] { return uow.ActionItems() },
	ToResponse: ToResponse,
}

// Service provides action item management operations.
type Service struct {
	uows uowFactory
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new ActionItem service.
func NewService(log *slog.Logger, uows uowFactory) *Service {
	return &Service{
		uows: uows,
		log:  log.With("service", "actionitem"),
		now:  crud.Clock,
	}
}
