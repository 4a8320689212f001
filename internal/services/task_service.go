package services

import (
	"errors"
	"time"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	EventID     uuid.UUID  `json:"eventId" binding:"required"`
	ColumnID    uuid.UUID  `json:"columnId" binding:"required"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
	DueDate     string     `json:"dueDate"`
}

// TaskUpdateInput carries pointers throughout: absent fields leave the stored
// values untouched.
type TaskUpdateInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventID     *uuid.UUID `json:"eventId"`
	ColumnID    *uuid.UUID `json:"columnId"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
	DueDate     *string    `json:"dueDate"`
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Task not found")
		}
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Create(in TaskInput) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := findEvent(tx, in.EventID)
		if err != nil {
			return err
		}

		column, err := findColumn(tx, in.ColumnID)
		if err != nil {
			return err
		}

		if column.EventID != event.ID {
			return apperr.NotFound("Column does not belong to the specified event")
		}

		task = models.Task{
			Title:       in.Title,
			Description: in.Description,
			EventID:     event.ID,
			ColumnID:    column.ID,
			Priority:    models.ParseTaskPriority(in.Priority),
			Status:      statusOrNil(in.Status),
			DueDate:     parseDueDate(in.DueDate),
		}

		if in.AssignedTo != nil {
			assignee, err := findUser(tx, *in.AssignedTo)
			if err != nil {
				return err
			}
			task.AssignedTo = &assignee.ID
		}

		if in.CreatedBy != nil {
			creator, err := findUser(tx, *in.CreatedBy)
			if err != nil {
				return err
			}
			task.CreatedBy = &creator.ID
		}

		return tx.Create(&task).Error
	})

	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Update(id uuid.UUID, in TaskUpdateInput) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Task not found")
			}
			return err
		}

		if in.Title != nil {
			task.Title = *in.Title
		}
		if in.Description != nil {
			task.Description = *in.Description
		}

		if in.EventID != nil {
			event, err := findEvent(tx, *in.EventID)
			if err != nil {
				return err
			}
			task.EventID = event.ID

			// The check runs against the task's current column; a column
			// change in the same request is validated separately below.
			column, err := findColumn(tx, task.ColumnID)
			if err != nil {
				return err
			}
			if column.EventID != event.ID {
				return apperr.NotFound("Column does not belong to the specified event")
			}
		}

		if in.ColumnID != nil {
			column, err := findColumn(tx, *in.ColumnID)
			if err != nil {
				return err
			}
			if column.EventID != task.EventID {
				return apperr.NotFound("Column does not belong to the specified event")
			}
			task.ColumnID = column.ID
		}

		if in.Priority != nil {
			task.Priority = models.ParseTaskPriority(*in.Priority)
		}
		if in.Status != nil {
			task.Status = statusOrNil(*in.Status)
		}

		if in.AssignedTo != nil {
			assignee, err := findUser(tx, *in.AssignedTo)
			if err != nil {
				return err
			}
			task.AssignedTo = &assignee.ID
		}

		if in.CreatedBy != nil {
			creator, err := findUser(tx, *in.CreatedBy)
			if err != nil {
				return err
			}
			task.CreatedBy = &creator.ID
		}

		if in.DueDate != nil {
			task.DueDate = parseDueDate(*in.DueDate)
		}

		return tx.Save(&task).Error
	})

	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Task not found")
			}
			return err
		}
		return tx.Delete(&task).Error
	})
}

func statusOrNil(s string) *models.TaskStatus {
	if s == "" {
		return nil
	}
	status := models.ParseTaskStatus(s)
	if status == "" {
		return nil
	}
	return &status
}

// parseDueDate accepts a full RFC 3339 timestamp or a bare calendar date
// read as UTC midnight. Unparseable input becomes nil rather than an error.
func parseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}
