package handlers

import (
	"net/http"

	"github.com/collabhub-dev/collabhub/internal/services"
	"github.com/collabhub-dev/collabhub/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	events *services.EventService
	log    *zap.SugaredLogger
}

func NewEventHandler(events *services.EventService, log *zap.SugaredLogger) *EventHandler {
	return &EventHandler{events: events, log: log}
}

func (h *EventHandler) List(ctx *gin.Context) {
	events, err := h.events.FindAll()

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	response := make([]types.EventResponse, 0, len(events))

	for i := range events {
		response = append(response, types.NewEventResponse(&events[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *EventHandler) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	event, err := h.events.GetByID(id)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(event))
}

func (h *EventHandler) Create(ctx *gin.Context) {
	var in services.EventInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	event, err := h.events.Create(in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEventResponse(event))
}

func (h *EventHandler) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var in services.EventInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	event, err := h.events.Update(id, in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(event))
}

func (h *EventHandler) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	if err := h.events.Delete(id); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
