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

	"surfshop-backend/config"
	"surfshop-backend/internal/alerts"
	"surfshop-backend/internal/api"
	"surfshop-backend/internal/db"
	"surfshop-backend/internal/forecast"
	"surfshop-backend/internal/notification"
	"surfshop-backend/internal/payments"
	"surfshop-backend/internal/rental"
	"surfshop-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "surfshop-backend ", log.LstdFlags)

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

	// Check for VAPID keys
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Fatalf("VAPID keys must be configured. Please generate them and add them to your config file.")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	// Make sure the upload directory exists before serving it.
	if err := os.MkdirAll(cfg.Server.UploadDir, 0o755); err != nil {
		logger.Fatalf("failed to create upload directory %s: %v", cfg.Server.UploadDir, err)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the store and the rental engine on top of it
	appStore := store.NewGormStore(gormDB)
	engine := rental.NewEngine(appStore, rental.SystemClock{})
	logger.Println("data store and rental engine initialized")

	// Worker pool pushing rental alerts to browser subscriptions
	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, &webpushOptions)
	workerPool.Start(ctx)

	// Periodic alert sweep
	if cfg.Alerts.Enabled {
		poller, err := alerts.NewPoller(engine, workerPool, cfg.Alerts.Schedule)
		if err != nil {
			logger.Fatalf("failed to create alert poller: %v", err)
		}
		poller.Start()
		defer poller.Stop()
	} else {
		logger.Println("alert poller is disabled")
	}

	// Upstream proxies and payments
	forecastSvc := forecast.NewService(cfg.Forecast)
	paymentsSvc := payments.NewService(cfg.Payments)

	// Initialize router
	handler := api.NewHandler(appStore, engine, forecastSvc, paymentsSvc, &webpushOptions, cfg)
	router := api.NewRouter(handler)
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
