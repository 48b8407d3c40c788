package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength bounds kanban and task titles
const MaxTitleLength = 100

// Kanban is a named board owned by a user that groups tasks
type Kanban struct {
	BaseModel
	Title   string    `gorm:"type:varchar(100);not null" json:"title"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_kanbans_owner_id" json:"owner_id"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Tasks   []Task    `gorm:"foreignKey:KanbanID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Kanban
func (Kanban) TableName() string {
	return "kanbans"
}

func (k *Kanban) GetOwnerID() uuid.UUID {
	return k.OwnerID
}

// Validate checks the title constraints before a write
func (k *Kanban) Validate() error {
	return validateTitle(k.Title)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &FieldError{Field: "title", Message: "This field is required."}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &FieldError{Field: "title", Message: "Ensure this value has at most 100 characters."}
	}
	return nil
}
