package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/session"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	SignupFunc       func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	AuthenticateFunc func(ctx context.Context, username, password string) (*dto.UserResponse, error)
	GetUserFunc      func(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	ListUsersFunc    func(ctx context.Context) ([]*dto.UserResponse, error)
	DeleteUserFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return &dto.UserResponse{ID: uuid.New(), Username: req.Username}, nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*dto.UserResponse, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return &dto.UserResponse{ID: uuid.New(), Username: username}, nil
}

func (m *MockAuthService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return &dto.UserResponse{ID: id}, nil
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []*dto.UserResponse{}, nil
}

func (m *MockAuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockKanbanService is a mock implementation of KanbanService
type MockKanbanService struct {
	CreateFunc      func(ctx context.Context, ownerID uuid.UUID, req *dto.CreateKanbanRequest) (*dto.KanbanResponse, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*dto.KanbanResponse, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*dto.KanbanResponse, error)
	LoadFunc        func(ctx context.Context, id uuid.UUID) (*domain.Kanban, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockKanbanService) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateKanbanRequest) (*dto.KanbanResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, req)
	}
	return &dto.KanbanResponse{ID: uuid.New(), Title: req.Title, OwnerID: ownerID}, nil
}

func (m *MockKanbanService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dto.KanbanResponse, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return []*dto.KanbanResponse{}, nil
}

func (m *MockKanbanService) Get(ctx context.Context, id uuid.UUID) (*dto.KanbanResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &dto.KanbanResponse{ID: id}, nil
}

func (m *MockKanbanService) Load(ctx context.Context, id uuid.UUID) (*domain.Kanban, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, id)
	}
	return &domain.Kanban{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockKanbanService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateFunc func(ctx context.Context, ownerID, kanbanID uuid.UUID, req *dto.TaskFormRequest, upload *service.ImageUpload) (*dto.TaskResponse, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error)
	LoadFunc   func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, req *dto.TaskFormRequest, upload *service.ImageUpload) (*dto.TaskResponse, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	AssignFunc func(ctx context.Context, id uuid.UUID, req *dto.AssignTaskRequest) (*dto.TaskResponse, error)
}

func (m *MockTaskService) Create(ctx context.Context, ownerID, kanbanID uuid.UUID, req *dto.TaskFormRequest, upload *service.ImageUpload) (*dto.TaskResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, kanbanID, req, upload)
	}
	return &dto.TaskResponse{ID: uuid.New(), Title: req.Title, KanbanID: kanbanID, OwnerID: ownerID}, nil
}

func (m *MockTaskService) Get(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &dto.TaskResponse{ID: id}, nil
}

func (m *MockTaskService) Load(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, id)
	}
	return &domain.Task{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockTaskService) Update(ctx context.Context, id uuid.UUID, req *dto.TaskFormRequest, upload *service.ImageUpload) (*dto.TaskResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req, upload)
	}
	return &dto.TaskResponse{ID: id, Title: req.Title}, nil
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &domain.Task{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockTaskService) Assign(ctx context.Context, id uuid.UUID, req *dto.AssignTaskRequest) (*dto.TaskResponse, error) {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, id, req)
	}
	return &dto.TaskResponse{ID: id, Status: string(domain.TaskStatusAssigned)}, nil
}

// mockSessions records issued and revoked sessions
type mockSessions struct {
	IssueErr  error
	RevokeErr error
	issued    []uuid.UUID
	revoked   []string
}

func (m *mockSessions) Issue(userID uuid.UUID, username string) (string, *session.Claims, error) {
	if m.IssueErr != nil {
		return "", nil, m.IssueErr
	}
	m.issued = append(m.issued, userID)
	return "token-" + username, &session.Claims{Username: username}, nil
}

func (m *mockSessions) Revoke(ctx context.Context, claims *session.Claims) error {
	m.revoked = append(m.revoked, claims.ID)
	return m.RevokeErr
}

func (m *mockSessions) TTL() time.Duration {
	return time.Hour
}

// withUser marks the request as coming from userID
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

// withClaims attaches session claims, as the session middleware does
func withClaims(claims *session.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextSession, claims)
		c.Next()
	}
}

// withResource stores a resource the way RequireOwner does
func withResource(resource domain.Owned) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextResource, resource)
		c.Next()
	}
}
