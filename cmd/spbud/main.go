package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"spbu-monitor-backend/config"
	"spbu-monitor-backend/internal/api"
	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/store"
	"spbu-monitor-backend/internal/upstream"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	// Setup logger
	config.SetupLogger(cfg.Log)
	log.Printf("configuration loaded successfully from %s", configPath)

	// Check for the upstream API settings
	if cfg.Upstream.BaseURL == "" {
		log.Fatalf("upstream.base_url must be configured (or set %s)", config.EnvAPIBaseURL)
	}
	if cfg.Upstream.Token == "" {
		log.Warnf("no API token configured; set %s if the upstream requires one", config.EnvAPIToken)
	}
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the upstream API client
	client := upstream.NewClient(&cfg.Upstream)
	defer client.Close()

	// Wrap the client with the snapshot cache
	appStore := store.NewCachedStore(client, cfg.Cache.SnapshotTTL)
	// Create the PDF exporter, bounded by the worker pool size
	exporter := export.NewExporter(appStore, cfg.Location(), cfg.WorkerPool.Size)

	// Initialize router
	router := api.NewRouter(appStore, exporter, &cfg.Server)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		log.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	log.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server Shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
