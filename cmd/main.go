package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/adapters/gemini"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
	"github.com/zonaelectrica/zeia-server/internal/api"
	"github.com/zonaelectrica/zeia-server/internal/auth"
	"github.com/zonaelectrica/zeia-server/internal/config"
	"github.com/zonaelectrica/zeia-server/internal/websocket"
	"github.com/zonaelectrica/zeia-server/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize the gateway
	var assistant repositories.Assistant
	var connector repositories.LiveConnector
	if cfg.UseMockAssistant {
		logger.Warn("Running with the mock gateway, no real model calls will be made")
		mock := gemini.NewMockAssistant()
		assistant = mock
		connector = mock
	} else {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, logger)
		if err != nil {
			logger.Fatal("Failed to initialize gateway client", zap.Error(err))
		}
		assistant = client
		connector = client
	}

	// Initialize usecase services
	store := usecase.NewConversationStore()
	policy := usecase.DefaultRoutingPolicy()
	policy.ConsultationLimit = cfg.ConsultationLimit

	chatService := usecase.NewChatService(assistant, store, policy, logger)
	analysisService := usecase.NewAnalysisService(assistant, store, cfg.ConsultationLimit, logger)
	placesService := usecase.NewPlacesService(assistant, logger)
	speechService := usecase.NewSpeechService(assistant, logger)

	cleanup := usecase.NewCleanupService(store, cfg.ConversationTTL, cfg.CleanupInterval, logger)
	cleanup.Start()
	defer cleanup.Stop()

	// Initialize WebSocket hub for voice sessions
	hub := websocket.NewHub(connector, logger)
	go hub.Run()

	// Initialize API routes
	api.InitRoutes(e, &api.Handler{
		Chat:     chatService,
		Analysis: analysisService,
		Places:   placesService,
		Speech:   speechService,
		Auth:     auth.NewManager(cfg.JWTSecret, cfg.SessionTokenTTL),
		Hub:      hub,
		Logger:   logger,
	})

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
