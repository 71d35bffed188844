// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/infrastructure/database/redis"
	"github.com/goldenbarrel/storefront-backend/internal/interfaces/http"
	"github.com/goldenbarrel/storefront-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg.Logging)

	appLog.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Load the product catalog
	cat, err := catalog.Load(cfg.Catalog.Path, appLog)
	if err != nil {
		appLog.Fatalf("Failed to load product catalog: %v", err)
	}
	appLog.Infof("Loaded %d products from %s", cat.Len(), cfg.Catalog.Path)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg, appLog)
	if err != nil {
		appLog.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		appLog.Fatalf("Redis health check failed: %v", err)
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, cat, redisClient.GetClient(), appLog)

	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("Server shutdown completed")
}
