package services

import (
	"time"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatInput struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Participants []uuid.UUID `json:"participants" binding:"required,min=1"`
}

type MessageInput struct {
	UserID    uuid.UUID  `json:"userId" binding:"required"`
	Message   string     `json:"message" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	ReplyTo   *uuid.UUID `json:"replyTo"`
}

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) FindAll() ([]models.Chat, error) {
	var chats []models.Chat
	if err := s.db.Preload("Participants").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (s *ChatService) GetByID(id uuid.UUID) (*models.Chat, error) {
	return findChat(s.db, id)
}

func (s *ChatService) Create(in ChatInput) (*models.Chat, error) {
	var chat models.Chat

	err := s.db.Transaction(func(tx *gorm.DB) error {
		participants := make([]models.User, 0, len(in.Participants))
		seen := make(map[uuid.UUID]bool)

		for _, id := range in.Participants {
			if seen[id] {
				continue
			}
			seen[id] = true

			user, err := findUser(tx, id)
			if err != nil {
				return err
			}
			participants = append(participants, *user)
		}

		chat = models.Chat{
			Name:         in.Name,
			Type:         models.ParseChatType(in.Type),
			Participants: participants,
		}

		return tx.Create(&chat).Error
	})

	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func (s *ChatService) GetMessages(chatID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.Where("chat_id = ?", chatID).Order("timestamp asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage stores the message and refreshes the parent chat's cached
// last-message fields in the same transaction. Reply targets are resolved by
// id only; their chat membership is not checked.
func (s *ChatService) CreateMessage(chatID uuid.UUID, in MessageInput) (*models.ChatMessage, error) {
	var message models.ChatMessage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		chat, err := findChat(tx, chatID)
		if err != nil {
			return err
		}

		user, err := findUser(tx, in.UserID)
		if err != nil {
			return err
		}

		message = models.ChatMessage{
			ChatID:  chat.ID,
			UserID:  user.ID,
			Message: in.Message,
		}

		if in.Timestamp != nil {
			message.Timestamp = *in.Timestamp
		}

		if in.ReplyTo != nil {
			reply, err := findMessage(tx, *in.ReplyTo)
			if err != nil {
				return err
			}
			message.ReplyToID = &reply.ID
		}

		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		chat.LastMessage = message.Message
		chat.LastMessageTime = &message.Timestamp

		return tx.Model(&models.Chat{}).Where("id = ?", chat.ID).
			Updates(map[string]interface{}{
				"last_message":      chat.LastMessage,
				"last_message_time": chat.LastMessageTime,
			}).Error
	})

	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (s *ChatService) DeleteMessage(chatID, messageID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		message, err := findMessage(tx, messageID)
		if err != nil {
			return err
		}

		if message.ChatID != chatID {
			return apperr.NotFound("Message not found in chat")
		}

		return tx.Delete(message).Error
	})
}
