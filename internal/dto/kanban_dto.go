package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateKanbanRequest represents the kanban creation form
type CreateKanbanRequest struct {
	Title string `form:"title" json:"title" binding:"required,max=100" example:"Sprint 1"`
}

// KanbanResponse represents a kanban with its tasks
// @Description tasks is only populated on the detail endpoint
type KanbanResponse struct {
	ID        uuid.UUID      `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title     string         `json:"title" example:"Sprint 1"`
	OwnerID   uuid.UUID      `json:"owner_id" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Tasks     []TaskResponse `json:"tasks,omitempty"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-15T14:20:00Z"`
}

// KanbanMutationResponse is returned by kanban create and delete
type KanbanMutationResponse struct {
	Kanban   *KanbanResponse `json:"kanban,omitempty"`
	Redirect string          `json:"redirect" example:"/kanban_list/"`
}
