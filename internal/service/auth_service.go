package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

const (
	MsgUsernameTaken      = "A user with that username already exists."
	MsgPasswordNumeric    = "This password is entirely numeric."
	MsgPasswordMismatch   = "The two password fields didn't match."
	MsgInvalidCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."
)

// AuthService defines the interface for account business logic
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Authenticate(ctx context.Context, username, password string) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type authServiceImpl struct {
	userRepo   repository.UserRepository
	taskRepo   repository.TaskRepository
	store      client.FileStore
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	store client.FileStore,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		store:      store,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Signup registers a new user
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)

	if req.Password1 != req.Password2 {
		return nil, response.NewFieldError("password2", MsgPasswordMismatch)
	}
	if isNumeric(req.Password1) {
		return nil, response.NewFieldError("password2", MsgPasswordNumeric)
	}

	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, response.NewFieldError("username", MsgUsernameTaken)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), s.bcryptCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewFieldError("username", MsgUsernameTaken)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID.String()))
	return toUserResponse(user), nil
}

// Authenticate checks a username and password pair
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError(MsgInvalidCredentials, "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, response.NewValidationError(MsgInvalidCredentials, "")
	}

	return toUserResponse(user), nil
}

// GetUser returns a single user
func (s *authServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "User not found", "Failed to load user")
	}
	return toUserResponse(user), nil
}

// ListUsers returns the users that can be picked as task executors
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

// DeleteUser removes the account with its kanbans, tasks and their images.
// Tasks of other users keep existing without an executor.
func (s *authServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	keys, err := s.taskRepo.ImageKeysByOwner(ctx, id)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to collect task images", err.Error())
	}

	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		return toAppError(err, "User not found", "Failed to delete user")
	}

	removeImages(ctx, s.store, s.logger, keys)
	s.logger.Info("User deleted", zap.String("user_id", id.String()), zap.Int("images", len(keys)))
	return nil
}

func isNumeric(password string) bool {
	if password == "" {
		return false
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
