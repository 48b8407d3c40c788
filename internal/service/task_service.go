package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/imageproc"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// Storage prefix for task images
const taskImagePrefix = "tasks/"

const (
	MsgInvalidImage      = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	MsgImageAndClear     = "Please either submit a file or check the clear checkbox, not both."
	MsgInvalidExecutor   = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalidDeadline   = "Enter a valid date/time."
	imageTooLargeMessage = "Image size must not exceed %g MB"
)

// ImageUpload is a file received with a task form
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ImageOptions configures upload limits
type ImageOptions struct {
	MaxSizeBytes int64
	MaxSizeMB    float64
}

// TaskService defines the interface for task business logic
type TaskService interface {
	Create(ctx context.Context, ownerID, kanbanID uuid.UUID, req *dto.TaskFormRequest, upload *ImageUpload) (*dto.TaskResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error)
	Load(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.TaskFormRequest, upload *ImageUpload) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Assign(ctx context.Context, id uuid.UUID, req *dto.AssignTaskRequest) (*dto.TaskResponse, error)
}

type taskServiceImpl struct {
	taskRepo   repository.TaskRepository
	kanbanRepo repository.KanbanRepository
	userRepo   repository.UserRepository
	store      client.FileStore
	pipeline   *imageproc.Pipeline
	images     ImageOptions
	location   *time.Location
	now        func() time.Time
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	kanbanRepo repository.KanbanRepository,
	userRepo repository.UserRepository,
	store client.FileStore,
	pipeline *imageproc.Pipeline,
	images ImageOptions,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:   taskRepo,
		kanbanRepo: kanbanRepo,
		userRepo:   userRepo,
		store:      store,
		pipeline:   pipeline,
		images:     images,
		location:   time.UTC,
		now:        time.Now,
		metrics:    m,
		logger:     logger,
	}
}

// Create adds a task to an existing kanban
func (s *taskServiceImpl) Create(ctx context.Context, ownerID, kanbanID uuid.UUID, req *dto.TaskFormRequest, upload *ImageUpload) (*dto.TaskResponse, error) {
	if ownerID == uuid.Nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}

	if _, err := s.kanbanRepo.FindByID(ctx, kanbanID); err != nil {
		return nil, toAppError(err, "Kanban not found", "Failed to verify kanban")
	}

	task := &domain.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		OwnerID:     ownerID,
		KanbanID:    kanbanID,
		Status:      domain.TaskStatusPlanned,
	}
	if err := task.Validate(); err != nil {
		return nil, toAppError(err, "Task not found", "Failed to create task")
	}

	newKey, err := s.storeImage(ctx, upload)
	if err != nil {
		return nil, err
	}
	if newKey != "" {
		task.Image = &newKey
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.discardImage(ctx, newKey)
		return nil, toAppError(err, "Task not found", "Failed to create task")
	}

	s.metrics.IncrementTaskCreated()
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("kanban_id", kanbanID.String()),
		zap.Bool("has_image", task.HasImage()))

	return toTaskResponse(task, s.store), nil
}

// Get returns a single task
func (s *taskServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task, s.store), nil
}

// Load returns the task model, used for ownership checks
func (s *taskServiceImpl) Load(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Task not found", "Failed to load task")
	}
	return task, nil
}

// Update edits title, description and image. A new image replaces the old
// one; ClearImage removes it.
func (s *taskServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.TaskFormRequest, upload *ImageUpload) (*dto.TaskResponse, error) {
	if upload != nil && req.ClearImage {
		return nil, response.NewFieldError("image", MsgImageAndClear)
	}

	task, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(req.Title)
	task.Description = req.Description
	if err := task.Validate(); err != nil {
		return nil, toAppError(err, "Task not found", "Failed to update task")
	}

	var oldKey string
	if task.HasImage() {
		oldKey = *task.Image
	}

	newKey, err := s.storeImage(ctx, upload)
	if err != nil {
		return nil, err
	}
	switch {
	case newKey != "":
		task.Image = &newKey
	case req.ClearImage:
		task.Image = nil
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.discardImage(ctx, newKey)
		return nil, toAppError(err, "Task not found", "Failed to update task")
	}

	if oldKey != "" && (!task.HasImage() || *task.Image != oldKey) {
		removeImages(ctx, s.store, s.logger, []string{oldKey})
	}

	return toTaskResponse(task, s.store), nil
}

// Delete removes the task image, then the task. A failed image delete leaves
// the task untouched. The deleted task is returned so the caller knows which
// kanban it belonged to.
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.HasImage() && s.store != nil {
		if err := s.store.Delete(ctx, *task.Image); err != nil {
			s.logger.Error("Failed to delete task image",
				zap.String("task_id", id.String()),
				zap.String("key", *task.Image),
				zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to delete task image", err.Error())
		}
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return nil, toAppError(err, "Task not found", "Failed to delete task")
	}

	s.logger.Info("Task deleted", zap.String("task_id", id.String()))
	return task, nil
}

// Assign hands the task to an executor with a deadline
func (s *taskServiceImpl) Assign(ctx context.Context, id uuid.UUID, req *dto.AssignTaskRequest) (*dto.TaskResponse, error) {
	executorID, err := req.ExecutorID()
	if err != nil {
		return nil, response.NewFieldError("executor", MsgInvalidExecutor)
	}
	deadline, err := req.DeadlineTime(s.location)
	if err != nil {
		return nil, response.NewFieldError("deadline", MsgInvalidDeadline)
	}

	task, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if executorID != nil {
		exists, err := s.userRepo.Exists(ctx, *executorID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify executor", err.Error())
		}
		if !exists {
			return nil, response.NewFieldError("executor", domain.MsgExecutorNotFound)
		}
	}

	if err := task.Assign(executorID, deadline, s.now()); err != nil {
		return nil, toAppError(err, "Task not found", "Failed to assign task")
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, toAppError(err, "Task not found", "Failed to assign task")
	}

	s.metrics.IncrementTaskAssigned()
	s.logger.Info("Task assigned",
		zap.String("task_id", task.ID.String()),
		zap.String("executor_id", executorID.String()),
		zap.Time("deadline", *task.Deadline))

	return toTaskResponse(task, s.store), nil
}

// storeImage runs the upload through the pipeline and writes the result.
// It returns the storage key, or "" when there is no upload.
func (s *taskServiceImpl) storeImage(ctx context.Context, upload *ImageUpload) (string, error) {
	if upload == nil {
		return "", nil
	}
	if s.pipeline == nil || s.store == nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Image storage is not configured", "")
	}

	if s.images.MaxSizeBytes > 0 && upload.Size > s.images.MaxSizeBytes {
		s.metrics.RecordImageProcessed(metrics.ImageOutcomeRejected, 0)
		return "", response.NewFieldError("image", fmt.Sprintf(imageTooLargeMessage, s.images.MaxSizeMB))
	}

	start := time.Now()
	result, err := s.pipeline.Process(ctx, upload.Content, upload.Filename)
	if err != nil {
		if errors.Is(err, imageproc.ErrDecode) {
			s.metrics.RecordImageProcessed(metrics.ImageOutcomeRejected, time.Since(start))
			return "", response.NewFieldError("image", MsgInvalidImage)
		}
		s.metrics.RecordImageProcessed(metrics.ImageOutcomeFailed, time.Since(start))
		s.logger.Error("Image pipeline failed", zap.String("filename", upload.Filename), zap.Error(err))
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to process image", err.Error())
	}

	key := taskImagePrefix + result.Name
	if err := s.store.Put(ctx, key, bytes.NewReader(result.Data), int64(len(result.Data)), result.ContentType); err != nil {
		s.metrics.RecordImageProcessed(metrics.ImageOutcomeFailed, time.Since(start))
		s.logger.Error("Failed to store image", zap.String("key", key), zap.Error(err))
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to store image", err.Error())
	}

	s.metrics.RecordImageProcessed(metrics.ImageOutcomeSuccess, time.Since(start))
	s.logger.Debug("Image stored",
		zap.String("key", key),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.Int("bytes", len(result.Data)))
	return key, nil
}

// discardImage removes a freshly stored file when the row that would reference it was not written
func (s *taskServiceImpl) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	removeImages(ctx, s.store, s.logger, []string{key})
}

func toTaskResponse(task *domain.Task, store client.FileStore) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		StatusLabel: task.Status.Label(),
		OwnerID:     task.OwnerID,
		KanbanID:    task.KanbanID,
		ExecutorID:  task.ExecutorID,
		ImageURL:    imageURL(store, task.Image),
		CreatedAt:   task.CreatedAt,
		AssignedAt:  task.AssignedAt,
		Deadline:    task.Deadline,
		ReviewAt:    task.ReviewAt,
		DoneAt:      task.DoneAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
