package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

func TestKanbanHandler_CreateKanban(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name           string
		form           url.Values
		mockService    func(*MockKanbanService)
		expectedStatus int
	}{
		{
			name:           "success",
			form:           url.Values{"title": {"Sprint 1"}},
			mockService:    func(m *MockKanbanService) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			form:           url.Values{},
			mockService:    func(m *MockKanbanService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			form: url.Values{"title": {"Sprint 1"}},
			mockService: func(m *MockKanbanService) {
				m.CreateFunc = func(ctx context.Context, ownerID uuid.UUID, req *dto.CreateKanbanRequest) (*dto.KanbanResponse, error) {
					return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create kanban", "db down")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockKanbanService{}
			tt.mockService(mockService)
			h := NewKanbanHandler(mockService, zap.NewNop())
			r := setupTestRouter(withUser(ownerID))
			r.POST("/kanban_add/", h.CreateKanban)

			// When
			w := httptest.NewRecorder()
			r.ServeHTTP(w, formRequest(http.MethodPost, "/kanban_add/", tt.form))

			// Then
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusCreated {
				var resp dto.KanbanMutationResponse
				decodeSuccess(t, w, &resp)
				require.NotNil(t, resp.Kanban)
				assert.Equal(t, ownerID, resp.Kanban.OwnerID)
				assert.Equal(t, "Sprint 1", resp.Kanban.Title)
				assert.Equal(t, "/kanban_list/", resp.Redirect)
			}
		})
	}
}

func TestKanbanHandler_ListKanbans(t *testing.T) {
	ownerID := uuid.New()
	var requested uuid.UUID
	mockService := &MockKanbanService{
		ListByOwnerFunc: func(ctx context.Context, id uuid.UUID) ([]*dto.KanbanResponse, error) {
			requested = id
			return []*dto.KanbanResponse{{ID: uuid.New(), Title: "Sprint 1", OwnerID: id}}, nil
		},
	}
	h := NewKanbanHandler(mockService, zap.NewNop())
	r := setupTestRouter(withUser(ownerID))
	r.GET("/kanban_list/", h.ListKanbans)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kanban_list/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ownerID, requested)
	var kanbans []dto.KanbanResponse
	decodeSuccess(t, w, &kanbans)
	assert.Len(t, kanbans, 1)
}

func TestKanbanHandler_GetKanban(t *testing.T) {
	kanban := &domain.Kanban{BaseModel: domain.BaseModel{ID: uuid.New()}, Title: "Sprint 1"}

	t.Run("returns the detail with tasks", func(t *testing.T) {
		mockService := &MockKanbanService{
			GetFunc: func(ctx context.Context, id uuid.UUID) (*dto.KanbanResponse, error) {
				return &dto.KanbanResponse{ID: id, Title: "Sprint 1", Tasks: []dto.TaskResponse{{Title: "Fix bug"}}}, nil
			},
		}
		h := NewKanbanHandler(mockService, zap.NewNop())
		r := setupTestRouter(withResource(kanban))
		r.GET("/:id/kanban_detail/", h.GetKanban)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+kanban.ID.String()+"/kanban_detail/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var detail dto.KanbanResponse
		decodeSuccess(t, w, &detail)
		assert.Equal(t, kanban.ID, detail.ID)
		require.Len(t, detail.Tasks, 1)
	})

	t.Run("without authorized resource", func(t *testing.T) {
		h := NewKanbanHandler(&MockKanbanService{}, zap.NewNop())
		r := setupTestRouter()
		r.GET("/:id/kanban_detail/", h.GetKanban)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+kanban.ID.String()+"/kanban_detail/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("wrong resource type", func(t *testing.T) {
		h := NewKanbanHandler(&MockKanbanService{}, zap.NewNop())
		r := setupTestRouter(withResource(&domain.Task{}))
		r.GET("/:id/kanban_detail/", h.GetKanban)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+kanban.ID.String()+"/kanban_detail/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestKanbanHandler_DeleteKanban(t *testing.T) {
	kanban := &domain.Kanban{BaseModel: domain.BaseModel{ID: uuid.New()}}
	var deleted uuid.UUID
	mockService := &MockKanbanService{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	h := NewKanbanHandler(mockService, zap.NewNop())
	r := setupTestRouter(withResource(kanban))
	r.POST("/:id/kanban_delete/", h.DeleteKanban)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/"+kanban.ID.String()+"/kanban_delete/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, kanban.ID, deleted)
	var resp dto.KanbanMutationResponse
	decodeSuccess(t, w, &resp)
	assert.Nil(t, resp.Kanban)
	assert.Equal(t, "/kanban_list/", resp.Redirect)
}
