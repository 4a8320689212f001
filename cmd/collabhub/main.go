package main

import (
	"log"

	"github.com/collabhub-dev/collabhub/db"
	"github.com/collabhub-dev/collabhub/internal/auth"
	"github.com/collabhub-dev/collabhub/internal/config"
	"github.com/collabhub-dev/collabhub/internal/handlers"
	"github.com/collabhub-dev/collabhub/internal/logger"
	"github.com/collabhub-dev/collabhub/internal/middleware"
	"github.com/collabhub-dev/collabhub/internal/router"
	"github.com/collabhub-dev/collabhub/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatalw("Failed to connect to database", "error", err)
	}

	if err := db.Migrate(database); err != nil {
		zlog.Fatalw("Failed to migrate database", "error", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		zlog.Fatalw("Failed to initialize token manager", "error", err)
	}

	authService := services.NewAuthService(database, tokens)
	userService := services.NewUserService(database)
	eventService := services.NewEventService(database)
	columnService := services.NewColumnService(database)
	taskService := services.NewTaskService(database)
	chatService := services.NewChatService(database)

	set := &handlers.Set{
		Auth:    handlers.NewAuthHandler(authService, userService, zlog),
		Users:   handlers.NewUserHandler(userService, zlog),
		Events:  handlers.NewEventHandler(eventService, zlog),
		Columns: handlers.NewColumnHandler(columnService, zlog),
		Tasks:   handlers.NewTaskHandler(taskService, zlog),
		Chats:   handlers.NewChatHandler(chatService, zlog),
	}

	r := router.New(cfg, zlog, set, middleware.Authenticate(database, tokens))

	zlog.Infow("Starting server", "port", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatalw("Failed to start server", "error", err)
	}
}
