package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shop-assistant/config"
	_ "shop-assistant/docs" // Swagger docs
	"shop-assistant/internal/app"
	"shop-assistant/internal/faq"
	"shop-assistant/internal/httpserver"
	"shop-assistant/pkg/log"
)

// @title       Shop Assistant API
// @description E-commerce FAQ assistant: intent routing, FAQ retrieval and grounded answers over chat sessions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Shop Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Components
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize components: ", err)
		os.Exit(1)
	}

	// 4. FAQ ingestion
	out, err := a.Bootstrap(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to ingest FAQ data: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "FAQ collection ready: %s (skipped=%t)", out.Collection, out.Skipped)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     a.Middleware,
		ConversationUC: a.Conversation,
		FAQUC:          a.FAQ,
		Router:         a.Router,
		Threshold:      cfg.Router.Threshold,
		IngestMode:     faq.IngestMode(cfg.FAQ.IngestMode),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
