// Package task implements the free-form to-do use cases.
package task

import (
	"log/slog"
	"time"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type uowFactory interface {
	New() domain.UnitOfWork
}

const entityName = "Task"

var tasks = crud.Entity[domain.Task, Response]{
	Name:       entityName,
	Repo:       func(uow domain.UnitOfWork) domain.Repository[domain.Task] { return uow.Tasks() },
	ToResponse: ToResponse,
}

// Service provides task management operations.
type Service struct {
	uows uowFactory
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new Task service.
func NewService(log *slog.Logger, uows uowFactory) *Service {
	return &Service{
		uows: uows,
		log:  log.With("service", "task"),
		now:  crud.Clock,
	}
}
