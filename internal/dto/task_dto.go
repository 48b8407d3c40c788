package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskFormRequest represents the task create and update form (multipart/form-data)
// @Description image is optional and limited by the configured size
// @Description clear_image removes the current image on update
type TaskFormRequest struct {
	Title       string                `form:"title" json:"title" binding:"required,max=100" example:"Fix bug"`
	Description string                `form:"description" json:"description" binding:"required" example:"Login button does nothing"`
	ClearImage  bool                  `form:"clear_image" json:"clear_image" example:"false"`
	Image       *multipart.FileHeader `form:"image" json:"-" swaggerignore:"true"`
}

// AssignTaskRequest represents the task assignment form.
// Empty values are accepted here and rejected by the assignment rules so the
// error order stays executor, then deadline.
type AssignTaskRequest struct {
	Executor string `form:"executor" json:"executor" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Deadline string `form:"deadline" json:"deadline" example:"2024-03-31T18:00"`
}

// deadlineLayouts are tried in order; the last ones match datetime-local inputs
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ExecutorID parses the executor field. A blank value yields nil.
func (r AssignTaskRequest) ExecutorID() (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.Executor)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid executor id %q: %w", raw, err)
	}
	return &id, nil
}

// DeadlineTime parses the deadline field. Values without a zone are read in loc.
// A blank value yields nil.
func (r AssignTaskRequest) DeadlineTime(loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(r.Deadline)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid deadline %q", raw)
}

// TaskResponse represents a task
type TaskResponse struct {
	ID          uuid.UUID  `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title       string     `json:"title" example:"Fix bug"`
	Description string     `json:"description" example:"Login button does nothing"`
	Status      string     `json:"status" example:"planned"`
	StatusLabel string     `json:"status_label" example:"planned"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	KanbanID    uuid.UUID  `json:"kanban_id"`
	ExecutorID  *uuid.UUID `json:"executor_id,omitempty"`
	ImageURL    string     `json:"image_url,omitempty" example:"/media/tasks/0b5e0d4e-8f3c-4f70-9a43-8a2a7c2d0c1e.jpg"`
	CreatedAt   time.Time  `json:"created_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	ReviewAt    *time.Time `json:"review_at,omitempty"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskMutationResponse is returned by task create, update, assign and delete
type TaskMutationResponse struct {
	Task     *TaskResponse `json:"task,omitempty"`
	Redirect string        `json:"redirect" example:"/539167fb-b599-41ba-9ead-344a6d0b3a2f/kanban_detail/"`
}
