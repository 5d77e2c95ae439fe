package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/ratheesh-12/HostelMS/config"
	"github.com/ratheesh-12/HostelMS/internal/api"
	"github.com/ratheesh-12/HostelMS/internal/authz"
	"github.com/ratheesh-12/HostelMS/internal/db"
	"github.com/ratheesh-12/HostelMS/internal/notification"
	"github.com/ratheesh-12/HostelMS/internal/session"
	"github.com/ratheesh-12/HostelMS/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hostelms ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Println("VAPID keys are not configured; web push delivery is disabled")
	}

	// Initialize the durable session slot
	sessionDB, err := db.Init(cfg.Auth.SessionDB)
	if err != nil {
		logger.Fatalf("failed to initialize session database: %v", err)
	}
	logger.Println("session slot initialized")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the in-memory domain store and rehydrate the session
	appStore := store.New()
	sessions := session.New(store.SeedIdentities(), cfg.Auth.Password, db.NewSQLiteSlot(sessionDB))
	logger.Println("data store initialized")

	// Start the push notification worker pool
	pool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, webpushOptions)
	pool.Start(ctx)

	// Initialize router
	policy := authz.New()
	handler := api.NewHandler(appStore, sessions, policy, pool, webpushOptions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
