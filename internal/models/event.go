package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	OrderIndex  int       `gorm:"column:sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Columns []BoardColumn `gorm:"foreignKey:EventID"`
	Tasks   []Task        `gorm:"foreignKey:EventID"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
