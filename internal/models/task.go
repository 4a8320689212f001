package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ParseTaskPriority matches case-insensitively and falls back to medium for
// anything it does not recognize. Callers relying on strict validation must
// check the input themselves.
func ParseTaskPriority(s string) TaskPriority {
	switch strings.ToLower(s) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// ParseTaskStatus accepts "in_progress" as well as "in-progress" and returns
// the empty status (stored as null) for unrecognized input.
func ParseTaskStatus(s string) TaskStatus {
	switch strings.ReplaceAll(strings.ToLower(s), "_", "-") {
	case "todo":
		return StatusTodo
	case "in-progress":
		return StatusInProgress
	case "done":
		return StatusDone
	default:
		return ""
	}
}

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`

	EventID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ColumnID uuid.UUID `gorm:"type:uuid;not null;index"`

	Priority TaskPriority `gorm:"not null;default:medium"`
	Status   *TaskStatus

	AssignedTo *uuid.UUID `gorm:"type:uuid"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`

	DueDate   *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Event    Event       `gorm:"foreignKey:EventID"`
	Column   BoardColumn `gorm:"foreignKey:ColumnID"`
	Assignee *User       `gorm:"foreignKey:AssignedTo"`
	Creator  *User       `gorm:"foreignKey:CreatedBy"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
