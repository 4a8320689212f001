package services

import (
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) FindAll() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	return findEvent(s.db, id)
}

func (s *EventService) Create(in EventInput) (*models.Event, error) {
	event := models.Event{
		Title:       in.Title,
		Description: in.Description,
		OrderIndex:  in.Order,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	}); err != nil {
		return nil, err
	}

	return &event, nil
}

// Update replaces title, description and order wholesale.
func (s *EventService) Update(id uuid.UUID, in EventInput) (*models.Event, error) {
	var event *models.Event

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = findEvent(tx, id)
		if err != nil {
			return err
		}

		event.Title = in.Title
		event.Description = in.Description
		event.OrderIndex = in.Order

		return tx.Save(event).Error
	})

	if err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes the event together with its columns and tasks, dependents
// first, inside one transaction.
func (s *EventService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		event, err := findEvent(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.BoardColumn{}).Error; err != nil {
			return err
		}

		return tx.Delete(event).Error
	})
}
