package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type UserHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewUserHandler(authService service.AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		logger:      logger,
	}
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns every account, used as executor choices when assigning tasks
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserResponse}
// @Failure      403 {object} response.ErrorResponse "Not logged in"
// @Failure      500 {object} response.ErrorResponse
// @Router       /users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, users)
}
