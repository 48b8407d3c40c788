package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Adds a task to the kanban. The optional image is resized and stored as JPEG.
// @Tags         tasks
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Kanban ID (UUID)"
// @Param        title formData string true "Title (max 100 characters)"
// @Param        description formData string true "Description"
// @Param        image formData file false "Image"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskMutationResponse}
// @Failure      400 {object} response.ErrorResponse "Field errors"
// @Failure      403 {object} response.ErrorResponse "Not logged in"
// @Failure      404 {object} response.ErrorResponse "Kanban not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/task_add/ [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	kanbanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Kanban not found")
		return
	}

	var req dto.TaskFormRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	upload, closeUpload, ok := h.openUpload(c, &req)
	if !ok {
		return
	}
	defer closeUpload()

	task, err := h.taskService.Create(c.Request.Context(), userID, kanbanID, &req, upload)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.TaskMutationResponse{Task: task, Redirect: kanbanDetailPath(kanbanID)})
}

// GetTask godoc
// @Summary      Task detail
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /{id}/task_detail/ [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := ownedTask(c)
	if !ok {
		return
	}

	detail, err := h.taskService.Get(c.Request.Context(), task.ID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, detail)
}

// UpdateTask godoc
// @Summary      Edit a task
// @Description  Updates title and description. A new image replaces the old one, clear_image removes it.
// @Tags         tasks
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Task ID (UUID)"
// @Param        title formData string true "Title (max 100 characters)"
// @Param        description formData string true "Description"
// @Param        image formData file false "Replacement image"
// @Param        clear_image formData bool false "Remove the current image"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskMutationResponse}
// @Failure      400 {object} response.ErrorResponse "Field errors"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/task_update/ [post]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := ownedTask(c)
	if !ok {
		return
	}

	var req dto.TaskFormRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	upload, closeUpload, ok := h.openUpload(c, &req)
	if !ok {
		return
	}
	defer closeUpload()

	updated, err := h.taskService.Update(c.Request.Context(), task.ID, &req, upload)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.TaskMutationResponse{Task: updated, Redirect: kanbanDetailPath(task.KanbanID)})
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Deletes the task and its image
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskMutationResponse}
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/task_delete/ [post]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := ownedTask(c)
	if !ok {
		return
	}

	deleted, err := h.taskService.Delete(c.Request.Context(), task.ID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.TaskMutationResponse{Redirect: kanbanDetailPath(deleted.KanbanID)})
}

// AssignTask godoc
// @Summary      Assign a task
// @Description  Sets the executor and a deadline in the future. The task moves to the assigned status.
// @Tags         tasks
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID (UUID)"
// @Param        request body dto.AssignTaskRequest true "Assignment"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskMutationResponse}
// @Failure      400 {object} response.ErrorResponse "no executor, no deadline or deadline in the past"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /{id}/task_assign/ [post]
func (h *TaskHandler) AssignTask(c *gin.Context) {
	task, ok := ownedTask(c)
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindError(c, err)
		return
	}

	assigned, err := h.taskService.Assign(c.Request.Context(), task.ID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.TaskMutationResponse{Task: assigned, Redirect: kanbanDetailPath(task.KanbanID)})
}

// openUpload opens the uploaded image, if any. The returned func closes it.
func (h *TaskHandler) openUpload(c *gin.Context, req *dto.TaskFormRequest) (*service.ImageUpload, func(), bool) {
	if req.Image == nil {
		return nil, func() {}, true
	}

	file, err := req.Image.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded image", zap.String("filename", req.Image.Filename), zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to read uploaded image")
		return nil, nil, false
	}

	upload := &service.ImageUpload{
		Filename: req.Image.Filename,
		Size:     req.Image.Size,
		Content:  file,
	}
	return upload, func() { _ = file.Close() }, true
}
