package services

import (
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnInput struct {
	Title   string    `json:"title" binding:"required"`
	EventID uuid.UUID `json:"eventId" binding:"required"`
	Order   int       `json:"order"`
	Color   string    `json:"color"`
}

type ColumnService struct {
	db *gorm.DB
}

func NewColumnService(db *gorm.DB) *ColumnService {
	return &ColumnService{db: db}
}

func (s *ColumnService) FindAll() ([]models.BoardColumn, error) {
	var columns []models.BoardColumn
	if err := s.db.Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *ColumnService) FindByEvent(eventID uuid.UUID) ([]models.BoardColumn, error) {
	var columns []models.BoardColumn
	if err := s.db.Where("event_id = ?", eventID).Order("sort_order asc").Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *ColumnService) GetByID(id uuid.UUID) (*models.BoardColumn, error) {
	return findColumn(s.db, id)
}

func (s *ColumnService) Create(in ColumnInput) (*models.BoardColumn, error) {
	var column models.BoardColumn

	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := findEvent(tx, in.EventID)
		if err != nil {
			return err
		}

		column = models.BoardColumn{
			Title:      in.Title,
			EventID:    event.ID,
			OrderIndex: in.Order,
			Color:      in.Color,
		}

		return tx.Create(&column).Error
	})

	if err != nil {
		return nil, err
	}

	return &column, nil
}

// Update replaces title, order and color, and moves the column to another
// event when the request names a different one.
func (s *ColumnService) Update(id uuid.UUID, in ColumnInput) (*models.BoardColumn, error) {
	var column *models.BoardColumn

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		column, err = findColumn(tx, id)
		if err != nil {
			return err
		}

		column.Title = in.Title
		column.OrderIndex = in.Order
		column.Color = in.Color

		if column.EventID != in.EventID {
			event, err := findEvent(tx, in.EventID)
			if err != nil {
				return err
			}
			column.EventID = event.ID
		}

		return tx.Save(column).Error
	})

	if err != nil {
		return nil, err
	}

	return column, nil
}

// Delete removes the column and its tasks inside one transaction.
func (s *ColumnService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		column, err := findColumn(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("column_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(column).Error
	})
}
