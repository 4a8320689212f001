package handlers

import (
	"net/http"

	"github.com/collabhub-dev/collabhub/internal/services"
	"github.com/collabhub-dev/collabhub/internal/types"
	"github.com/collabhub-dev/collabhub/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth  *services.AuthService
	users *services.UserService
	log   *zap.SugaredLogger
}

func NewAuthHandler(auth *services.AuthService, users *services.UserService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, log: log}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var in services.RegisterInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, user, err := h.auth.Register(in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.AuthResponse{
		Token: token,
		User:  types.NewUserResponse(user),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var in services.LoginInput

	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, user, err := h.auth.Login(in)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AuthResponse{
		Token: token,
		User:  types.NewUserResponse(user),
	})
}

// Logout exists for client symmetry; bearer tokens are not tracked server
// side, so there is nothing to revoke.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	current, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	// Re-read the row so a deleted account answers 404 instead of echoing
	// stale token claims.
	user, err := h.users.GetByID(current.ID)

	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}
