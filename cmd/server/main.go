package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/jiningying/property-chat-agent/config"
	httpDelivery "github.com/jiningying/property-chat-agent/internal/delivery/http"
	"github.com/jiningying/property-chat-agent/internal/domain"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/catalog"
	openaiBackend "github.com/jiningying/property-chat-agent/internal/infrastructure/openai"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/store"
	"github.com/jiningying/property-chat-agent/internal/logger"
	"github.com/jiningying/property-chat-agent/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment, cfg.Server.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting property-chat-agent",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Infrastructure: seeded catalog, in-memory profiles, optional AI backend
	listings := catalog.NewSeeded()
	profiles := store.NewMemoryStore()

	var backend domain.ChatBackend
	if cfg.AI.Enabled {
		client, err := openaiBackend.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
		if err != nil {
			zlog.Fatal("failed to configure ai backend", zap.Error(err))
		}
		backend = client
		zlog.Info("ai backend configured", zap.String("model", cfg.AI.Model))
	} else {
		zlog.Info("ai backend disabled, using template responses")
	}

	engine := usecase.NewMatchEngine(usecase.MatchConfig{
		ScoreThreshold: cfg.Matching.ScoreThreshold,
		MaxResults:     cfg.Matching.MaxResults,
	})

	chatService := usecase.NewChatService(listings, profiles, backend, engine, zlog)

	handler := httpDelivery.NewHandler(chatService, listings)
	router := httpDelivery.SetupRouter(cfg, handler, zlog)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr), zap.Int("catalog_size", listings.Len()))

	if err := router.Run(addr); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
