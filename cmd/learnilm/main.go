package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KartikSaxena19/LearnILmWorld/internal/api"
	"github.com/KartikSaxena19/LearnILmWorld/internal/api/handlers"
	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"
	"github.com/KartikSaxena19/LearnILmWorld/internal/repository"
	"github.com/KartikSaxena19/LearnILmWorld/internal/service"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/auth"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/config"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/logger"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/postgres"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// @title LearnILmWorld API
// @version 1.0
// @description Tutoring marketplace backend with an assistant chatbot

// @contact.name API Support
// @contact.email support@learnilmworld.com

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LearnILmWorld service")

	// Initialize database
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	feedbackRepo := repository.NewFeedbackRepository(db, appLogger)
	careerRepo := repository.NewCareerRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize chatbot pipeline pieces
	kb := chatbot.LoadKnowledgeBase(cfg.Chatbot.KnowledgePath, appLogger)
	memory := chatbot.NewMemory()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	llmService := service.NewLLMService(&cfg.Gemini, kb, memory, appLogger)
	chatService := service.NewChatService(chatRepo, llmService, memory, &cfg.Chatbot, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, careerRepo, appLogger)

	// Idle in-memory sessions are swept in the background
	chatService.StartJanitor(ctx)

	// Initialize handlers
	validate := validator.New()
	authHandler := handlers.NewAuthHandler(authService, validate, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, validate, appLogger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validate, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, chatHandler, feedbackHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
