package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban-board-api/internal/domain"
)

// KanbanRepository defines the interface for kanban data access
type KanbanRepository interface {
	Create(ctx context.Context, kanban *domain.Kanban) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Kanban, error)
	Count(ctx context.Context) (int64, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type kanbanRepositoryImpl struct {
	db *gorm.DB
}

// NewKanbanRepository creates a new instance of KanbanRepository
func NewKanbanRepository(db *gorm.DB) KanbanRepository {
	return &kanbanRepositoryImpl{db: db}
}

func (r *kanbanRepositoryImpl) Create(ctx context.Context, kanban *domain.Kanban) error {
	if err := kanban.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(kanban).Error
}

func (r *kanbanRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	var kanban domain.Kanban
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&kanban).Error; err != nil {
		return nil, err
	}
	return &kanban, nil
}

// FindByIDWithTasks loads the kanban and its tasks, oldest first
func (r *kanbanRepositoryImpl) FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	var kanban domain.Kanban
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&kanban).Error; err != nil {
		return nil, err
	}
	return &kanban, nil
}

// FindByOwner returns the kanbans of a single owner, oldest first
func (r *kanbanRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Kanban, error) {
	var kanbans []*domain.Kanban
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&kanbans).Error; err != nil {
		return nil, err
	}
	return kanbans, nil
}

func (r *kanbanRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Kanban{}).Count(&count).Error
	return count, err
}

// DeleteCascade removes the kanban and its tasks in one transaction
func (r *kanbanRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kanban_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Kanban{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
