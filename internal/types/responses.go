// Package types holds the JSON response shapes shared by handlers.
package types

import (
	"time"

	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Avatar         string    `json:"avatar"`
	Role           string    `json:"role"`
	Department     string    `json:"department"`
	ActiveTasks    int       `json:"activeTasks"`
	CompletedTasks int       `json:"completedTasks"`
	JoinedDate     time.Time `json:"joinedDate"`
}

func NewUserResponse(user *models.User) UserResponse {
	avatar := user.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatarURL(user.Name)
	}

	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Avatar:         avatar,
		Role:           user.Role,
		Department:     user.Department,
		ActiveTasks:    user.ActiveTasks,
		CompletedTasks: user.CompletedTasks,
		JoinedDate:     user.JoinedDate,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       int       `json:"order"`
}

func NewEventResponse(event *models.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
		Order:       event.OrderIndex,
	}
}

type ColumnResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	EventID uuid.UUID `json:"eventId"`
	Order   int       `json:"order"`
	Color   string    `json:"color"`
}

func NewColumnResponse(column *models.BoardColumn) ColumnResponse {
	return ColumnResponse{
		ID:      column.ID,
		Title:   column.Title,
		EventID: column.EventID,
		Order:   column.OrderIndex,
		Color:   column.Color,
	}
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventID     uuid.UUID  `json:"eventId"`
	ColumnID    uuid.UUID  `json:"columnId"`
	Priority    string     `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate"`
}

func NewTaskResponse(task *models.Task) TaskResponse {
	var status *string
	if task.Status != nil {
		s := string(*task.Status)
		status = &s
	}

	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		EventID:     task.EventID,
		ColumnID:    task.ColumnID,
		Priority:    string(task.Priority),
		Status:      status,
		AssignedTo:  task.AssignedTo,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		DueDate:     task.DueDate,
	}
}

type ChatResponse struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	Participants    []uuid.UUID `json:"participants"`
	CreatedAt       time.Time   `json:"createdAt"`
	LastMessage     string      `json:"lastMessage"`
	LastMessageTime *time.Time  `json:"lastMessageTime"`
}

func NewChatResponse(chat *models.Chat) ChatResponse {
	participants := make([]uuid.UUID, 0, len(chat.Participants))
	for _, user := range chat.Participants {
		participants = append(participants, user.ID)
	}

	return ChatResponse{
		ID:              chat.ID,
		Name:            chat.Name,
		Type:            string(chat.Type),
		Participants:    participants,
		CreatedAt:       chat.CreatedAt,
		LastMessage:     chat.LastMessage,
		LastMessageTime: chat.LastMessageTime,
	}
}

type ChatMessageResponse struct {
	ID        uuid.UUID  `json:"id"`
	ChatID    uuid.UUID  `json:"chatId"`
	UserID    uuid.UUID  `json:"userId"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
	ReplyTo   *uuid.UUID `json:"replyTo"`
}

func NewChatMessageResponse(message *models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        message.ID,
		ChatID:    message.ChatID,
		UserID:    message.UserID,
		Message:   message.Message,
		Timestamp: message.Timestamp,
		ReplyTo:   message.ReplyToID,
	}
}
