package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatType string

const (
	ChatDirect ChatType = "direct"
	ChatGroup  ChatType = "group"
)

// ParseChatType defaults to group for anything that is not "direct".
func ParseChatType(s string) ChatType {
	if strings.ToLower(s) == "direct" {
		return ChatDirect
	}
	return ChatGroup
}

type Chat struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Type ChatType `gorm:"not null;default:group"`

	Participants []User `gorm:"many2many:chat_participants"`

	CreatedAt       time.Time `gorm:"autoCreateTime"`
	LastMessage     string
	LastMessageTime *time.Time
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null"`

	// Reply targets are resolved by id only; nothing checks that the target
	// belongs to the same chat.
	ReplyToID *uuid.UUID `gorm:"type:uuid;column:reply_to"`

	Chat    Chat         `gorm:"foreignKey:ChatID"`
	User    User         `gorm:"foreignKey:UserID"`
	ReplyTo *ChatMessage `gorm:"foreignKey:ReplyToID"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return nil
}
