package handlers

import (
	"errors"
	"net/http"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Set bundles the resource handlers for router wiring.
type Set struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Events  *EventHandler
	Columns *ColumnHandler
	Tasks   *TaskHandler
	Chats   *ChatHandler
}

// respondError maps domain errors to their HTTP status; anything else is a
// logged 500.
func respondError(ctx *gin.Context, log *zap.SugaredLogger, err error) {
	var appErr *apperr.Error

	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	log.Errorw("request failed",
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
