// Package crudtest provides moq-style mocks of the persistence ports for
// service tests.
package crudtest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nebula/nebula-backend/internal/domain"
)

// Ensure, that RepositoryMock does implement domain.Repository.
var _ domain.Repository[domain.Person] = &RepositoryMock[domain.Person]{}

// RepositoryMock is a mock implementation of domain.Repository.
type RepositoryMock[T any] struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*T, error)
	GetAllFunc     func(ctx context.Context) ([]*T, error)
	FindFunc       func(ctx context.Context, pred domain.Predicate) ([]*T, error)
	ExistsFunc     func(ctx context.Context, id uuid.UUID) (bool, error)
	AddFunc        func(entity *T) *T
	UpdateFunc     func(entity *T)
	DeleteFunc     func(entity *T)
	DeleteByIDFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		GetByID    []struct{ ID uuid.UUID }
		GetAll     []struct{}
		Find       []struct{ Pred domain.Predicate }
		Exists     []struct{ ID uuid.UUID }
		Add        []struct{ Entity *T }
		Update     []struct{ Entity *T }
		Delete     []struct{ Entity *T }
		DeleteByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (m *RepositoryMock[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if m.GetByIDFunc == nil {
		panic("RepositoryMock.GetByIDFunc: method is nil but Repository.GetByID was just called")
	}
	m.lock.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (m *RepositoryMock[T]) GetByIDCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.GetByID
}

// GetAll calls GetAllFunc.
func (m *RepositoryMock[T]) GetAll(ctx context.Context) ([]*T, error) {
	if m.GetAllFunc == nil {
		panic("RepositoryMock.GetAllFunc: method is nil but Repository.GetAll was just called")
	}
	m.lock.Lock()
	m.calls.GetAll = append(m.calls.GetAll, struct{}{})
	m.lock.Unlock()
	return m.GetAllFunc(ctx)
}

// GetAllCalls gets all the calls that were made to GetAll.
func (m *RepositoryMock[T]) GetAllCalls() []struct{} {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.GetAll
}

// Find calls FindFunc.
func (m *RepositoryMock[T]) Find(ctx context.Context, pred domain.Predicate) ([]*T, error) {
	if m.FindFunc == nil {
		panic("RepositoryMock.FindFunc: method is nil but Repository.Find was just called")
	}
	m.lock.Lock()
	m.calls.Find = append(m.calls.Find, struct{ Pred domain.Predicate }{pred})
	m.lock.Unlock()
	return m.FindFunc(ctx, pred)
}

// FindCalls gets all the calls that were made to Find.
func (m *RepositoryMock[T]) FindCalls() []struct{ Pred domain.Predicate } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Find
}

// Exists calls ExistsFunc.
func (m *RepositoryMock[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc == nil {
		panic("RepositoryMock.ExistsFunc: method is nil but Repository.Exists was just called")
	}
	m.lock.Lock()
	m.calls.Exists = append(m.calls.Exists, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.ExistsFunc(ctx, id)
}

// ExistsCalls gets all the calls that were made to Exists.
func (m *RepositoryMock[T]) ExistsCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Exists
}

// Add calls AddFunc.
func (m *RepositoryMock[T]) Add(entity *T) *T {
	if m.AddFunc == nil {
		panic("RepositoryMock.AddFunc: method is nil but Repository.Add was just called")
	}
	m.lock.Lock()
	m.calls.Add = append(m.calls.Add, struct{ Entity *T }{entity})
	m.lock.Unlock()
	return m.AddFunc(entity)
}

// AddCalls gets all the calls that were made to Add.
func (m *RepositoryMock[T]) AddCalls() []struct{ Entity *T } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Add
}

// Update calls UpdateFunc.
func (m *RepositoryMock[T]) Update(entity *T) {
	if m.UpdateFunc == nil {
		panic("RepositoryMock.UpdateFunc: method is nil but Repository.Update was just called")
	}
	m.lock.Lock()
	m.calls.Update = append(m.calls.Update, struct{ Entity *T }{entity})
	m.lock.Unlock()
	m.UpdateFunc(entity)
}

// UpdateCalls gets all the calls that were made to Update.
func (m *RepositoryMock[T]) UpdateCalls() []struct{ Entity *T } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Update
}

// Delete calls DeleteFunc.
func (m *RepositoryMock[T]) Delete(entity *T) {
	if m.DeleteFunc == nil {
		panic("RepositoryMock.DeleteFunc: method is nil but Repository.Delete was just called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, struct{ Entity *T }{entity})
	m.lock.Unlock()
	m.DeleteFunc(entity)
}

// DeleteCalls gets all the calls that were made to Delete.
func (m *RepositoryMock[T]) DeleteCalls() []struct{ Entity *T } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

// DeleteByID calls DeleteByIDFunc.
func (m *RepositoryMock[T]) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteByIDFunc == nil {
		panic("RepositoryMock.DeleteByIDFunc: method is nil but Repository.DeleteByID was just called")
	}
	m.lock.Lock()
	m.calls.DeleteByID = append(m.calls.DeleteByID, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.DeleteByIDFunc(ctx, id)
}

// DeleteByIDCalls gets all the calls that were made to DeleteByID.
func (m *RepositoryMock[T]) DeleteByIDCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.DeleteByID
}

// Ensure, that UnitOfWorkMock does implement domain.UnitOfWork.
var _ domain.UnitOfWork = &UnitOfWorkMock{}

// UnitOfWorkMock is a mock implementation of domain.UnitOfWork.
type UnitOfWorkMock struct {
	PeopleFunc              func() domain.Repository[domain.Person]
	TasksFunc               func() domain.Repository[domain.Task]
	DailyTasksFunc          func() domain.Repository[domain.DailyTask]
	ActionItemsFunc         func() domain.Repository[domain.ActionItem]
	ActionItemTypesFunc     func() domain.Repository[domain.ActionItemType]
	SaveChangesFunc         func(ctx context.Context) (int64, error)
	BeginTransactionFunc    func(ctx context.Context) error
	CommitTransactionFunc   func(ctx context.Context) error
	RollbackTransactionFunc func(ctx context.Context) error
	CloseFunc               func(ctx context.Context) error

	calls struct {
		SaveChanges         int
		BeginTransaction    int
		CommitTransaction   int
		RollbackTransaction int
		Close               int
	}
	lock sync.RWMutex
}

// People calls PeopleFunc.
func (m *UnitOfWorkMock) People() domain.Repository[domain.Person] {
	if m.PeopleFunc == nil {
		panic("UnitOfWorkMock.PeopleFunc: method is nil but UnitOfWork.People was just called")
	}
	return m.PeopleFunc()
}

// Tasks calls TasksFunc.
func (m *UnitOfWorkMock) Tasks() domain.Repository[domain.Task] {
	if m.TasksFunc == nil {
		panic("UnitOfWorkMock.TasksFunc: method is nil but UnitOfWork.Tasks was just called")
	}
	return m.TasksFunc()
}

// DailyTasks calls DailyTasksFunc.
func (m *UnitOfWorkMock) DailyTasks() domain.Repository[domain.DailyTask] {
	if m.DailyTasksFunc == nil {
		panic("UnitOfWorkMock.DailyTasksFunc: method is nil but UnitOfWork.DailyTasks was just called")
	}
	return m.DailyTasksFunc()
}

// ActionItems calls ActionItemsFunc.
func (m *UnitOfWorkMock) ActionItems() domain.Repository[domain.ActionItem] {
	if m.ActionItemsFunc == nil {
		panic("UnitOfWorkMock.ActionItemsFunc: method is nil but UnitOfWork.ActionItems was just called")
	}
	return m.ActionItemsFunc()
}

// ActionItemTypes calls ActionItemTypesFunc.
func (m *UnitOfWorkMock) ActionItemTypes() domain.Repository[domain.ActionItemType] {
	if m.ActionItemTypesFunc == nil {
		panic("UnitOfWorkMock.ActionItemTypesFunc: method is nil but UnitOfWork.ActionItemTypes was just called")
	}
	return m.ActionItemTypesFunc()
}

// SaveChanges calls SaveChangesFunc.
func (m *UnitOfWorkMock) SaveChanges(ctx context.Context) (int64, error) {
	if m.SaveChangesFunc == nil {
		panic("UnitOfWorkMock.SaveChangesFunc: method is nil but UnitOfWork.SaveChanges was just called")
	}
	m.lock.Lock()
	m.calls.SaveChanges++
	m.lock.Unlock()
	return m.SaveChangesFunc(ctx)
}

// SaveChangesCalls returns how many times SaveChanges was called.
func (m *UnitOfWorkMock) SaveChangesCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SaveChanges
}

// BeginTransaction calls BeginTransactionFunc.
func (m *UnitOfWorkMock) BeginTransaction(ctx context.Context) error {
	if m.BeginTransactionFunc == nil {
		panic("UnitOfWorkMock.BeginTransactionFunc: method is nil but UnitOfWork.BeginTransaction was just called")
	}
	m.lock.Lock()
	m.calls.BeginTransaction++
	m.lock.Unlock()
	return m.BeginTransactionFunc(ctx)
}

// BeginTransactionCalls returns how many times BeginTransaction was called.
func (m *UnitOfWorkMock) BeginTransactionCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.BeginTransaction
}

// CommitTransaction calls CommitTransactionFunc.
func (m *UnitOfWorkMock) CommitTransaction(ctx context.Context) error {
	if m.CommitTransactionFunc == nil {
		panic("UnitOfWorkMock.CommitTransactionFunc: method is nil but UnitOfWork.CommitTransaction was just called")
	}
	m.lock.Lock()
	m.calls.CommitTransaction++
	m.lock.Unlock()
	return m.CommitTransactionFunc(ctx)
}

// CommitTransactionCalls returns how many times CommitTransaction was called.
func (m *UnitOfWorkMock) CommitTransactionCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.CommitTransaction
}

// RollbackTransaction calls RollbackTransactionFunc.
func (m *UnitOfWorkMock) RollbackTransaction(ctx context.Context) error {
	if m.RollbackTransactionFunc == nil {
		panic("UnitOfWorkMock.RollbackTransactionFunc: method is nil but UnitOfWork.RollbackTransaction was just called")
	}
	m.lock.Lock()
	m.calls.RollbackTransaction++
	m.lock.Unlock()
	return m.RollbackTransactionFunc(ctx)
}

// RollbackTransactionCalls returns how many times RollbackTransaction was called.
func (m *UnitOfWorkMock) RollbackTransactionCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.RollbackTransaction
}

// Close calls CloseFunc.
func (m *UnitOfWorkMock) Close(ctx context.Context) error {
	if m.CloseFunc == nil {
		panic("UnitOfWorkMock.CloseFunc: method is nil but UnitOfWork.Close was just called")
	}
	m.lock.Lock()
	m.calls.Close++
	m.lock.Unlock()
	return m.CloseFunc(ctx)
}

// CloseCalls returns how many times Close was called.
func (m *UnitOfWorkMock) CloseCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Close
}

// FactoryMock is a mock UnitOfWork factory.
type FactoryMock struct {
	NewFunc func() domain.UnitOfWork

	calls int
	lock  sync.RWMutex
}

// New calls NewFunc.
func (m *FactoryMock) New() domain.UnitOfWork {
	if m.NewFunc == nil {
		panic("FactoryMock.NewFunc: method is nil but Factory.New was just called")
	}
	m.lock.Lock()
	m.calls++
	m.lock.Unlock()
	return m.NewFunc()
}

// NewCalls returns how many units of work were opened.
func (m *FactoryMock) NewCalls() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls
}
