package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/session"
)

const (
	redirectHome       = "/"
	redirectKanbanList = "/kanban_list/"
)

// SessionIssuer creates and revokes session tokens
type SessionIssuer interface {
	Issue(userID uuid.UUID, username string) (string, *session.Claims, error)
	Revoke(ctx context.Context, claims *session.Claims) error
	TTL() time.Duration
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService service.AuthService
	sessions    SessionIssuer
	cookie      CookieConfig
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, sessions SessionIssuer, cookie CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
		logger:      logger,
	}
}

// Index godoc
// @Summary      Landing page
// @Description  Reports whether the caller is logged in
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.IndexResponse}
// @Router       / [get]
func (h *AuthHandler) Index(c *gin.Context) {
	resp := dto.IndexResponse{}
	if userID := middleware.CurrentUserID(c); userID != uuid.Nil {
		user, err := h.authService.GetUser(c.Request.Context(), userID)
		if err == nil {
			resp.IsAuthenticated = true
			resp.User = user
		}
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Checks the credentials and sets the session cookie
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} response.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid credentials"
// @Failure      500 {object} response.ErrorResponse
// @Router       /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	if !h.startSession(c, user) {
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.AuthResponse{User: *user, Redirect: redirectKanbanList})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current session and clears the cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.RedirectResponse}
// @Router       /logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.endSession(c)
	response.SendSuccess(c, http.StatusOK, dto.RedirectResponse{Redirect: redirectHome})
}

// Signup godoc
// @Summary      Create an account
// @Description  Creates a user and logs it in. Only available to anonymous visitors.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "Account"
// @Success      201 {object} response.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} response.ErrorResponse "Field errors"
// @Failure      403 {object} response.ErrorResponse "Already logged in"
// @Failure      500 {object} response.ErrorResponse
// @Router       /signup/ [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	if !h.startSession(c, user) {
		return
	}
	response.SendSuccess(c, http.StatusCreated, dto.AuthResponse{User: *user, Redirect: redirectKanbanList})
}

// DeleteAccount godoc
// @Summary      Delete the current account
// @Description  Deletes the user with its kanbans, tasks and images, then ends the session
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.RedirectResponse}
// @Failure      403 {object} response.ErrorResponse "Not logged in"
// @Failure      500 {object} response.ErrorResponse
// @Router       /account_delete/ [post]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.endSession(c)
	response.SendSuccess(c, http.StatusOK, dto.RedirectResponse{Redirect: redirectHome})
}

func (h *AuthHandler) startSession(c *gin.Context, user *dto.UserResponse) bool {
	token, _, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("Failed to issue session", zap.String("user_id", user.ID.String()), zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to start session")
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.sessions.TTL().Seconds()), "/", "", h.cookie.Secure, true)
	return true
}

func (h *AuthHandler) endSession(c *gin.Context) {
	if claims, ok := middleware.SessionClaims(c); ok {
		if err := h.sessions.Revoke(c.Request.Context(), claims); err != nil {
			h.logger.Warn("Failed to revoke session", zap.String("session_id", claims.ID), zap.Error(err))
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
