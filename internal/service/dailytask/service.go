// Package dailytask implements the use cases for to-do items scoped to a single day.
package dailytask

import (
	"log/slog"
	"time"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/internal/service/crud"
)

type uowFactory interface {
	New() domain.UnitOfWork
}

const entityName = "DailyTask"

var dailyTasks = crud.Entity[domain.DailyTask, Response]{
	Name:       entityName,
	Repo:       func(uow domain.UnitOfWork) domain.Repository[domain.DailyTask] { return uow.DailyTasks() },
	ToResponse: ToResponse,
}

// Service provides daily task management operations.
type Service struct {
	uows uowFactory
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new DailyTask service.
func NewService(log *slog.Logger, uows uowFactory) *Service {
	return &Service{
		uows: uows,
		log:  log.With("service", "dailytask"),
		now:  crud.Clock,
	}
}
