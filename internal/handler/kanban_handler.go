package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type KanbanHandler struct {
	kanbanService service.KanbanService
	logger        *zap.Logger
}

func NewKanbanHandler(kanbanService service.KanbanService, logger *zap.Logger) *KanbanHandler {
	return &KanbanHandler{
		kanbanService: kanbanService,
		logger:        logger,
	}
}

// CreateKanban godoc
// @Summary      Create a kanban
// @Tags         kanbans
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateKanbanRequest true "Kanban"
// @Success      201 {object} response.SuccessResponse{data=dto.KanbanMutationResponse}
// @Failure      400 {object} response.ErrorResponse "Field errors"
// @Failure      403 {object} response.ErrorResponse "Not logged in"
// @Failure      500 {object} response.ErrorResponse
// @Router       /kanban_add/ [post]
func (h *KanbanHandler) CreateKanban(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateKanbanRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	kanban, err := h.kanbanService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.KanbanMutationResponse{Kanban: kanban, Redirect: redirectKanbanList})
}

// ListKanbans godoc
// @Summary      List my kanbans
// @Tags         kanbans
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.KanbanResponse}
// @Failure      403 {object} response.ErrorResponse "Not logged in"
// @Failure      500 {object} response.ErrorResponse
// @Router       /kanban_list/ [get]
func (h *KanbanHandler) ListKanbans(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	kanbans, err := h.kanbanService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, kanbans)
}

// GetKanban godoc
// @Summary      Kanban detail
// @Description  Returns the kanban with its tasks (owner only)
// @Tags         kanbans
// @Produce      json
// @Param        id path string true "Kanban ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.KanbanResponse}
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Kanban not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/kanban_detail/ [get]
func (h *KanbanHandler) GetKanban(c *gin.Context) {
	kanban, ok := ownedKanban(c)
	if !ok {
		return
	}

	detail, err := h.kanbanService.Get(c.Request.Context(), kanban.ID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, detail)
}

// DeleteKanban godoc
// @Summary      Delete a kanban
// @Description  Deletes the kanban, its tasks and their images (owner only)
// @Tags         kanbans
// @Produce      json
// @Param        id path string true "Kanban ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.KanbanMutationResponse}
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Kanban not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/kanban_delete/ [post]
func (h *KanbanHandler) DeleteKanban(c *gin.Context) {
	kanban, ok := ownedKanban(c)
	if !ok {
		return
	}

	if err := h.kanbanService.Delete(c.Request.Context(), kanban.ID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.KanbanMutationResponse{Redirect: redirectKanbanList})
}
