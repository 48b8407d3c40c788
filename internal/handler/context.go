package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/response"
)

// extractUserID returns the logged in user or writes a 401 response.
func extractUserID(c *gin.Context) (uuid.UUID, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == uuid.Nil {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	return userID, true
}

// ownedKanban returns the kanban authorized by middleware.RequireOwner
func ownedKanban(c *gin.Context) (*domain.Kanban, bool) {
	resource, ok := middleware.Resource(c)
	if !ok {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Kanban not loaded")
		return nil, false
	}
	kanban, ok := resource.(*domain.Kanban)
	if !ok {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Kanban not loaded")
		return nil, false
	}
	return kanban, true
}

// ownedTask returns the task authorized by middleware.RequireOwner
func ownedTask(c *gin.Context) (*domain.Task, bool) {
	resource, ok := middleware.Resource(c)
	if !ok {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Task not loaded")
		return nil, false
	}
	task, ok := resource.(*domain.Task)
	if !ok {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Task not loaded")
		return nil, false
	}
	return task, true
}

func kanbanDetailPath(kanbanID uuid.UUID) string {
	return "/" + kanbanID.String() + "/kanban_detail/"
}
