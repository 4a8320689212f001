package middleware

import (
	"net/http"
	"strings"

	"github.com/collabhub-dev/collabhub/internal/auth"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthenticatedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

const ContextUserKey = "currentUser"

// Authenticate inspects the Authorization header and, when it carries a valid
// bearer token resolving to a stored user, attaches the caller identity to
// the request context. It never aborts: a missing, malformed, invalid or
// stale token simply leaves the request unauthenticated. Protected routes
// layer RequireUser on top.
func Authenticate(db *gorm.DB, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		if header == "" {
			ctx.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.Next()
			return
		}

		subject, email, err := tokens.Verify(parts[1])

		if err != nil {
			ctx.Next()
			return
		}

		var user models.User

		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			ctx.Next()
			return
		}

		// Stale credential: the account behind the email no longer matches
		// the token subject.
		if user.ID.String() != subject {
			ctx.Next()
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// RequireUser rejects requests that reached a protected route without an
// attached identity.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(ContextUserKey); !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		ctx.Next()
	}
}
