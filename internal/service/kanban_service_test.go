package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/response"
)

func TestKanbanService_Create(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		req         *dto.CreateKanbanRequest
		mockKanban  func(*MockKanbanRepository)
		wantErrCode string
	}{
		{
			name:    "success",
			ownerID: ownerID,
			req:     &dto.CreateKanbanRequest{Title: "  Sprint 1 "},
			mockKanban: func(m *MockKanbanRepository) {
				m.CreateFunc = func(ctx context.Context, kanban *domain.Kanban) error {
					assert.Equal(t, "Sprint 1", kanban.Title)
					assert.Equal(t, ownerID, kanban.OwnerID)
					kanban.ID = uuid.New()
					kanban.CreatedAt = time.Now()
					return nil
				}
			},
		},
		{
			name:        "anonymous owner",
			ownerID:     uuid.Nil,
			req:         &dto.CreateKanbanRequest{Title: "Sprint 1"},
			wantErrCode: response.ErrCodeUnauthorized,
		},
		{
			name:    "title rejected by model",
			ownerID: ownerID,
			req:     &dto.CreateKanbanRequest{Title: ""},
			mockKanban: func(m *MockKanbanRepository) {
				m.CreateFunc = func(ctx context.Context, kanban *domain.Kanban) error {
					return kanban.Validate()
				}
			},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "database failure",
			ownerID: ownerID,
			req:     &dto.CreateKanbanRequest{Title: "Sprint 1"},
			mockKanban: func(m *MockKanbanRepository) {
				m.CreateFunc = func(ctx context.Context, kanban *domain.Kanban) error {
					return errors.New("connection reset")
				}
			},
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			kanbans := &MockKanbanRepository{}
			if tt.mockKanban != nil {
				tt.mockKanban(kanbans)
			}
			m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
			svc := NewKanbanService(kanbans, &MockTaskRepository{}, client.NewMockFileStore(), m, zap.NewNop())

			// When
			resp, err := svc.Create(context.Background(), tt.ownerID, tt.req)

			// Then
			if tt.wantErrCode != "" {
				requireAppError(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sprint 1", resp.Title)
			assert.Equal(t, ownerID, resp.OwnerID)
		})
	}
}

func TestKanbanService_Get(t *testing.T) {
	kanbanID := uuid.New()
	image := "tasks/abc.jpg"
	kanbans := &MockKanbanRepository{
		FindByIDWithTasksFunc: func(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
			if id != kanbanID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Kanban{
				BaseModel: domain.BaseModel{ID: kanbanID},
				Title:     "Sprint 1",
				Tasks: []domain.Task{
					{Title: "Fix bug", Status: domain.TaskStatusPlanned, KanbanID: kanbanID, Image: &image},
					{Title: "Write docs", Status: domain.TaskStatusAssigned, KanbanID: kanbanID},
				},
			}, nil
		},
	}
	svc := NewKanbanService(kanbans, &MockTaskRepository{}, client.NewMockFileStore(), nil, zap.NewNop())

	resp, err := svc.Get(context.Background(), kanbanID)
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, "/media/tasks/abc.jpg", resp.Tasks[0].ImageURL)
	assert.Equal(t, "in progress", resp.Tasks[1].StatusLabel)
	assert.Empty(t, resp.Tasks[1].ImageURL)

	_, err = svc.Get(context.Background(), uuid.New())
	requireAppError(t, err, response.ErrCodeNotFound)
}

func TestKanbanService_ListByOwner(t *testing.T) {
	ownerID := uuid.New()
	kanbans := &MockKanbanRepository{
		FindByOwnerFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Kanban, error) {
			assert.Equal(t, ownerID, id)
			return []*domain.Kanban{{Title: "A", OwnerID: ownerID}, {Title: "B", OwnerID: ownerID}}, nil
		},
	}
	svc := NewKanbanService(kanbans, &MockTaskRepository{}, nil, nil, zap.NewNop())

	list, err := svc.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
	assert.Nil(t, list[0].Tasks)
}

func TestKanbanService_Delete(t *testing.T) {
	kanbanID := uuid.New()

	t.Run("rows first then images", func(t *testing.T) {
		store := client.NewMockFileStore()
		require.NoError(t, store.Put(context.Background(), "tasks/one.jpg", emptyReader(), 0, "image/jpeg"))

		var order []string
		kanbans := &MockKanbanRepository{
			DeleteCascadeFunc: func(ctx context.Context, id uuid.UUID) error {
				order = append(order, "rows")
				return nil
			},
		}
		store.DeleteFunc = func(ctx context.Context, key string) error {
			order = append(order, "image:"+key)
			return nil
		}
		tasks := &MockTaskRepository{
			ImageKeysByKanbanFunc: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				return []string{"tasks/one.jpg"}, nil
			},
		}
		svc := NewKanbanService(kanbans, tasks, store, nil, zap.NewNop())

		require.NoError(t, svc.Delete(context.Background(), kanbanID))
		assert.Equal(t, []string{"rows", "image:tasks/one.jpg"}, order)
	})

	t.Run("image delete failure is not fatal", func(t *testing.T) {
		store := client.NewMockFileStore()
		store.DeleteFunc = func(ctx context.Context, key string) error {
			return errors.New("bucket unavailable")
		}
		tasks := &MockTaskRepository{
			ImageKeysByKanbanFunc: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				return []string{"tasks/one.jpg"}, nil
			},
		}
		svc := NewKanbanService(&MockKanbanRepository{}, tasks, store, nil, zap.NewNop())

		assert.NoError(t, svc.Delete(context.Background(), kanbanID))
	})

	t.Run("missing kanban", func(t *testing.T) {
		kanbans := &MockKanbanRepository{
			DeleteCascadeFunc: func(ctx context.Context, id uuid.UUID) error {
				return gorm.ErrRecordNotFound
			},
		}
		svc := NewKanbanService(kanbans, &MockTaskRepository{}, client.NewMockFileStore(), nil, zap.NewNop())

		requireAppError(t, svc.Delete(context.Background(), kanbanID), response.ErrCodeNotFound)
	})
}

func TestKanbanService_Load(t *testing.T) {
	svc := NewKanbanService(&MockKanbanRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &MockTaskRepository{}, nil, nil, zap.NewNop())

	_, err := svc.Load(context.Background(), uuid.New())
	requireAppError(t, err, response.ErrCodeNotFound)
}
