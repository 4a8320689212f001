package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardColumn struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"not null"`
	OrderIndex int       `gorm:"column:sort_order"`
	Color      string
	EventID    uuid.UUID `gorm:"type:uuid;not null;index"`

	Event Event  `gorm:"foreignKey:EventID"`
	Tasks []Task `gorm:"foreignKey:ColumnID"`
}

func (BoardColumn) TableName() string {
	return "columns"
}

func (c *BoardColumn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
