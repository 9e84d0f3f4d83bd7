package main

import (
	"log"
	"time"

	"github/itish2003/companion/config"
	"github/itish2003/companion/controller"
	"github/itish2003/companion/logger"
	"github/itish2003/companion/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Invalid configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("FATAL: Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// One store for the whole process, shared by the notes and chat services.
	noteStore := services.NewMemoryNoteStore()
	engine := services.NewResponseEngine(services.NewRandomSource(cfg.ResponseSeed))

	authService := services.NewAuthService(time.Now, appLogger)
	notesService := services.NewNotesService(noteStore, appLogger)
	chatService := services.NewChatService(noteStore, engine, time.Now, appLogger)

	companionController := controller.NewCompanionController(authService, notesService, chatService, appLogger)
	router := controller.NewRouter(companionController, controller.RouterConfig{AllowOrigin: cfg.CORSAllowOrigin}, appLogger)

	appLogger.Info("Companion backend server starting",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Bool("seededReplies", cfg.ResponseSeed != nil),
	)
	appLogger.Info("API endpoints",
		zap.Strings("routes", []string{
			"GET  /health",
			"POST /api/login",
			"POST /api/store-info",
			"GET  /api/store-info?username=",
			"POST /api/chatbot",
		}),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
