package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban-board-api/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByKanban(ctx context.Context, kanbanID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// image keys referenced by task rows
	ImageKeysByKanban(ctx context.Context, kanbanID uuid.UUID) ([]string, error)
	ImageKeysByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	AllImageKeys(ctx context.Context) ([]string, error)
}

type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepositoryImpl) FindByKanban(ctx context.Context, kanbanID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("kanban_id = ?", kanbanID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes every column of the task in a single statement.
// The creation timestamp is never rewritten.
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(task).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Count(&count).Error
	return count, err
}

func (r *taskRepositoryImpl) ImageKeysByKanban(ctx context.Context, kanbanID uuid.UUID) ([]string, error) {
	return r.imageKeys(r.db.WithContext(ctx).Where("kanban_id = ?", kanbanID))
}

// ImageKeysByOwner covers tasks owned by the user and tasks inside kanbans they own
func (r *taskRepositoryImpl) ImageKeysByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	db := r.db.WithContext(ctx)
	ownedKanbans := db.Model(&domain.Kanban{}).Select("id").Where("owner_id = ?", ownerID)
	return r.imageKeys(db.Where("owner_id = ? OR kanban_id IN (?)", ownerID, ownedKanbans))
}

func (r *taskRepositoryImpl) AllImageKeys(ctx context.Context) ([]string, error) {
	return r.imageKeys(r.db.WithContext(ctx))
}

func (r *taskRepositoryImpl) imageKeys(scope *gorm.DB) ([]string, error) {
	var keys []string
	if err := scope.Model(&domain.Task{}).
		Where("image IS NOT NULL AND image <> ''").
		Pluck("image", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
