package services

import (
	"errors"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shared by-id lookups. Each returns a NotFound domain error when the row is
// absent so callers can propagate it untouched.

func findUser(tx *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func findEvent(tx *gorm.DB, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := tx.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, err
	}
	return &event, nil
}

func findColumn(tx *gorm.DB, id uuid.UUID) (*models.BoardColumn, error) {
	var column models.BoardColumn
	if err := tx.First(&column, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Column not found")
		}
		return nil, err
	}
	return &column, nil
}

func findChat(tx *gorm.DB, id uuid.UUID) (*models.Chat, error) {
	var chat models.Chat
	if err := tx.Preload("Participants").First(&chat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Chat not found")
		}
		return nil, err
	}
	return &chat, nil
}

func findMessage(tx *gorm.DB, id uuid.UUID) (*models.ChatMessage, error) {
	var message models.ChatMessage
	if err := tx.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Message not found")
		}
		return nil, err
	}
	return &message, nil
}
