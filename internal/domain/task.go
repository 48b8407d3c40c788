package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPlanned  TaskStatus = "planned"
	TaskStatusAssigned TaskStatus = "assigned"
	TaskStatusReview   TaskStatus = "review"
	TaskStatusDone     TaskStatus = "done"
	TaskStatusOverdue  TaskStatus = "overdue"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusPlanned:  "planned",
	TaskStatusAssigned: "in progress",
	TaskStatusReview:   "in review",
	TaskStatusDone:     "done",
	TaskStatusOverdue:  "overdue",
}

// AllTaskStatuses returns the statuses in lifecycle order
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPlanned, TaskStatusAssigned, TaskStatusReview, TaskStatusDone, TaskStatusOverdue}
}

func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// Label returns the human readable name of the status
func (s TaskStatus) Label() string {
	return taskStatusLabels[s]
}

// ErrTransitionUnsupported is returned for transitions that have no implementation yet
var ErrTransitionUnsupported = errors.New("task status transition is not supported")

// Assignment error messages
const (
	MsgNoExecutor       = "no executor"
	MsgNoDeadline       = "no deadline"
	MsgDeadlineInPast   = "deadline in the past"
	MsgExecutorNotFound = "executor does not exist"
)

// Task is a unit of work inside a kanban
type Task struct {
	BaseModel
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_owner_id" json:"owner_id"`
	Owner       *User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Image       *string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	KanbanID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_kanban_id" json:"kanban_id"`
	Status      TaskStatus `gorm:"type:varchar(100);not null;default:'planned';index:idx_tasks_status" json:"status"`
	ExecutorID  *uuid.UUID `gorm:"type:uuid;index:idx_tasks_executor_id" json:"executor_id"`
	Executor    *User      `gorm:"foreignKey:ExecutorID;constraint:OnDelete:SET NULL" json:"-"`
	AssignedAt  *time.Time `json:"assigned_at"`
	Deadline    *time.Time `json:"deadline"`
	ReviewAt    *time.Time `json:"review_at"`
	DoneAt      *time.Time `json:"done_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

func (t *Task) GetOwnerID() uuid.UUID {
	return t.OwnerID
}

// HasImage reports whether the task references a stored image
func (t *Task) HasImage() bool {
	return t.Image != nil && *t.Image != ""
}

// Validate checks the title constraints before a write
func (t *Task) Validate() error {
	if t.Status == "" {
		t.Status = TaskStatusPlanned
	}
	if !t.Status.Valid() {
		return &FieldError{Field: "status", Message: "Select a valid choice."}
	}
	return validateTitle(t.Title)
}

// Assign moves the task to the assigned state.
// Executor, deadline and assignment time change together or not at all.
func (t *Task) Assign(executorID *uuid.UUID, deadline *time.Time, now time.Time) error {
	if executorID == nil || *executorID == uuid.Nil {
		return &FieldError{Field: "executor", Message: MsgNoExecutor}
	}
	if deadline == nil {
		return &FieldError{Field: "deadline", Message: MsgNoDeadline}
	}
	if !deadline.After(now) {
		return &FieldError{Field: "deadline", Message: MsgDeadlineInPast}
	}

	executor := *executorID
	due := *deadline
	assignedAt := now
	t.ExecutorID = &executor
	t.Deadline = &due
	t.AssignedAt = &assignedAt
	t.Status = TaskStatusAssigned
	return nil
}

// TransitionTo handles status changes other than assignment
func (t *Task) TransitionTo(status TaskStatus) error {
	switch status {
	case TaskStatusAssigned:
		return errors.New("use Assign to move a task to the assigned state")
	case TaskStatusReview, TaskStatusDone, TaskStatusOverdue, TaskStatusPlanned:
		return ErrTransitionUnsupported
	default:
		return &FieldError{Field: "status", Message: "Select a valid choice."}
	}
}
