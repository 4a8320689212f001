package router

import (
	"time"

	"github.com/collabhub-dev/collabhub/internal/config"
	"github.com/collabhub-dev/collabhub/internal/handlers"
	"github.com/collabhub-dev/collabhub/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New assembles the HTTP surface. The authenticate middleware is the
// passthrough token filter; protected groups add RequireUser on top.
func New(cfg *config.Config, log *zap.SugaredLogger, h *handlers.Set, authenticate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(authenticate)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", h.Auth.Me)
		}

		protected := api.Group("", middleware.RequireUser())
		{
			events := protected.Group("/events")
			{
				events.GET("", h.Events.List)
				events.POST("", h.Events.Create)
				events.GET("/:id", h.Events.Get)
				events.PUT("/:id", h.Events.Update)
				events.DELETE("/:id", h.Events.Delete)
				events.GET("/:id/columns", h.Columns.ListByEvent)
			}

			columns := protected.Group("/columns")
			{
				columns.GET("", h.Columns.List)
				columns.POST("", h.Columns.Create)
				columns.PUT("/:id", h.Columns.Update)
				columns.DELETE("/:id", h.Columns.Delete)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", h.Tasks.List)
				tasks.POST("", h.Tasks.Create)
				tasks.GET("/:id", h.Tasks.Get)
				tasks.PUT("/:id", h.Tasks.Update)
				tasks.DELETE("/:id", h.Tasks.Delete)
			}

			chats := protected.Group("/chats")
			{
				chats.GET("", h.Chats.List)
				chats.POST("", h.Chats.Create)
				chats.GET("/:id", h.Chats.Get)
				chats.GET("/:id/messages", h.Chats.ListMessages)
				chats.POST("/:id/messages", h.Chats.CreateMessage)
				chats.DELETE("/:id/messages/:messageId", h.Chats.DeleteMessage)
			}

			users := protected.Group("/users")
			{
				users.GET("", h.Users.List)
				users.GET("/:id", h.Users.Get)
				users.PUT("/:id", h.Users.Update)
			}
		}
	}

	return r
}
