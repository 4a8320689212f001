package handlers

import (
	"net/http"

	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/collabhub-dev/collabhub/internal/services"
	"github.com/collabhub-dev/collabhub/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ColumnHandler struct {
	columns *services.ColumnService
	log     *zap.SugaredLogger
}

func NewColumnHandler(columns *services.ColumnService, log *zap.SugaredLogger) *ColumnHandler {
	return &ColumnHandler{columns: columns, log: log}
}

func (h *ColumnHandler) List(ctx *gin.Context) {
	columns, err := h.columns.FindAll()

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, columnResponses(columns))
}

func (h *ColumnHandler) ListByEvent(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	columns, err := h.columns.FindByEvent(eventID)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, columnResponses(columns))
}

func (h *ColumnHandler) Create(ctx *gin.Context) {
	var in services.ColumnInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.columns.Create(in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewColumnResponse(column))
}

func (h *ColumnHandler) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column id"})
		return
	}

	var in services.ColumnInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.columns.Update(id, in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewColumnResponse(column))
}

func (h *ColumnHandler) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column id"})
		return
	}

	if err := h.columns.Delete(id); err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func columnResponses(columns []models.BoardColumn) []types.ColumnResponse {
	response := make([]types.ColumnResponse, 0, len(columns))

	for i := range columns {
		response = append(response, types.NewColumnResponse(&columns[i]))
	}

	return response
}
