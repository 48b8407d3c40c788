package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// KanbanService defines the interface for kanban business logic
type KanbanService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateKanbanRequest) (*dto.KanbanResponse, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dto.KanbanResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.KanbanResponse, error)
	Load(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type kanbanServiceImpl struct {
	kanbanRepo repository.KanbanRepository
	taskRepo   repository.TaskRepository
	store      client.FileStore
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewKanbanService creates a new instance of KanbanService
func NewKanbanService(
	kanbanRepo repository.KanbanRepository,
	taskRepo repository.TaskRepository,
	store client.FileStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) KanbanService {
	return &kanbanServiceImpl{
		kanbanRepo: kanbanRepo,
		taskRepo:   taskRepo,
		store:      store,
		metrics:    m,
		logger:     logger,
	}
}

// Create creates a kanban owned by ownerID
func (s *kanbanServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateKanbanRequest) (*dto.KanbanResponse, error) {
	if ownerID == uuid.Nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}

	kanban := &domain.Kanban{
		Title:   strings.TrimSpace(req.Title),
		OwnerID: ownerID,
	}
	if err := s.kanbanRepo.Create(ctx, kanban); err != nil {
		return nil, toAppError(err, "Kanban not found", "Failed to create kanban")
	}

	s.metrics.IncrementKanbanCreated()
	s.logger.Info("Kanban created",
		zap.String("kanban_id", kanban.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return s.toKanbanResponse(kanban), nil
}

// ListByOwner returns the kanbans of one user
func (s *kanbanServiceImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dto.KanbanResponse, error) {
	kanbans, err := s.kanbanRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list kanbans", err.Error())
	}

	responses := make([]*dto.KanbanResponse, 0, len(kanbans))
	for _, kanban := range kanbans {
		responses = append(responses, s.toKanbanResponse(kanban))
	}
	return responses, nil
}

// Get returns a kanban with its tasks
func (s *kanbanServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.KanbanResponse, error) {
	kanban, err := s.kanbanRepo.FindByIDWithTasks(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Kanban not found", "Failed to load kanban")
	}
	return s.toKanbanResponse(kanban), nil
}

// Load returns the kanban model, used for ownership checks
func (s *kanbanServiceImpl) Load(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	kanban, err := s.kanbanRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Kanban not found", "Failed to load kanban")
	}
	return kanban, nil
}

// Delete removes the kanban and its tasks, then their images
func (s *kanbanServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	keys, err := s.taskRepo.ImageKeysByKanban(ctx, id)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to collect task images", err.Error())
	}

	if err := s.kanbanRepo.DeleteCascade(ctx, id); err != nil {
		return toAppError(err, "Kanban not found", "Failed to delete kanban")
	}

	removeImages(ctx, s.store, s.logger, keys)
	s.logger.Info("Kanban deleted", zap.String("kanban_id", id.String()), zap.Int("images", len(keys)))
	return nil
}

func (s *kanbanServiceImpl) toKanbanResponse(kanban *domain.Kanban) *dto.KanbanResponse {
	resp := &dto.KanbanResponse{
		ID:        kanban.ID,
		Title:     kanban.Title,
		OwnerID:   kanban.OwnerID,
		CreatedAt: kanban.CreatedAt,
		UpdatedAt: kanban.UpdatedAt,
	}
	if len(kanban.Tasks) > 0 {
		resp.Tasks = make([]dto.TaskResponse, 0, len(kanban.Tasks))
		for i := range kanban.Tasks {
			resp.Tasks = append(resp.Tasks, *toTaskResponse(&kanban.Tasks[i], s.store))
		}
	}
	return resp
}
