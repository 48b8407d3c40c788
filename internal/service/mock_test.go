package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	FindAllFunc        func(ctx context.Context) ([]*domain.User, error)
	ExistsFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCascadeFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockKanbanRepository is a mock implementation of KanbanRepository
type MockKanbanRepository struct {
	CreateFunc            func(ctx context.Context, kanban *domain.Kanban) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	FindByIDWithTasksFunc func(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	FindByOwnerFunc       func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Kanban, error)
	CountFunc             func(ctx context.Context) (int64, error)
	DeleteCascadeFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockKanbanRepository) Create(ctx context.Context, kanban *domain.Kanban) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, kanban)
	}
	return nil
}

func (m *MockKanbanRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.Kanban{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockKanbanRepository) FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	if m.FindByIDWithTasksFunc != nil {
		return m.FindByIDWithTasksFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockKanbanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Kanban, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockKanbanRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockKanbanRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc            func(ctx context.Context, task *domain.Task) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByKanbanFunc      func(ctx context.Context, kanbanID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc            func(ctx context.Context, task *domain.Task) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
	ImageKeysByKanbanFunc func(ctx context.Context, kanbanID uuid.UUID) ([]string, error)
	ImageKeysByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	AllImageKeysFunc      func(ctx context.Context) ([]string, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTaskRepository) FindByKanban(ctx context.Context, kanbanID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByKanbanFunc != nil {
		return m.FindByKanbanFunc(ctx, kanbanID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockTaskRepository) ImageKeysByKanban(ctx context.Context, kanbanID uuid.UUID) ([]string, error) {
	if m.ImageKeysByKanbanFunc != nil {
		return m.ImageKeysByKanbanFunc(ctx, kanbanID)
	}
	return nil, nil
}

func (m *MockTaskRepository) ImageKeysByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	if m.ImageKeysByOwnerFunc != nil {
		return m.ImageKeysByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockTaskRepository) AllImageKeys(ctx context.Context) ([]string, error) {
	if m.AllImageKeysFunc != nil {
		return m.AllImageKeysFunc(ctx)
	}
	return nil, nil
}
