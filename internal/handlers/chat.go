package handlers

import (
	"net/http"

	"github.com/collabhub-dev/collabhub/internal/services"
	"github.com/collabhub-dev/collabhub/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chats *services.ChatService
	log   *zap.SugaredLogger
}

func NewChatHandler(chats *services.ChatService, log *zap.SugaredLogger) *ChatHandler {
	return &ChatHandler{chats: chats, log: log}
}

func (h *ChatHandler) List(ctx *gin.Context) {
	chats, err := h.chats.FindAll()

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	response := make([]types.ChatResponse, 0, len(chats))

	for i := range chats {
		response = append(response, types.NewChatResponse(&chats[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ChatHandler) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	chat, err := h.chats.GetByID(id)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewChatResponse(chat))
}

func (h *ChatHandler) Create(ctx *gin.Context) {
	var in services.ChatInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	chat, err := h.chats.Create(in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewChatResponse(chat))
}

func (h *ChatHandler) ListMessages(ctx *gin.Context) {
	chatID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	messages, err := h.chats.GetMessages(chatID)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	response := make([]types.ChatMessageResponse, 0, len(messages))

	for i := range messages {
		response = append(response, types.NewChatMessageResponse(&messages[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ChatHandler) CreateMessage(ctx *gin.Context) {
	chatID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	var in services.MessageInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message, err := h.chats.CreateMessage(chatID, in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewChatMessageResponse(message))
}

func (h *ChatHandler) DeleteMessage(ctx *gin.Context) {
	chatID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	messageID, err := uuid.Parse(ctx.Param("messageId"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	if err := h.chats.DeleteMessage(chatID, messageID); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
