package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskscape/config"
	_ "taskscape/docs" // Swagger docs
	"taskscape/internal/httpserver"
	"taskscape/internal/scene"
	sceneUC "taskscape/internal/scene/usecase"
	"taskscape/internal/task/repository/memory"
	"taskscape/pkg/log"
)

// @title       Taskscape API
// @description Task management with deterministic 3D tree layout and heuristic decomposition suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Taskscape...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task store shared by all domains
	repo := memory.New(logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Repository:  repo,
		Layout: scene.BuilderConfig{
			MaxDepth:    cfg.Layout.MaxDepth,
			MinNodeSize: cfg.Layout.MinNodeSize,
		},
		SceneCache: sceneUC.Config{
			CacheSize: cfg.SceneCache.Size,
			CacheTTL:  cfg.SceneCache.TTL,
		},
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
