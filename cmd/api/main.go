package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/api"
	"github.com/tvoe/dlnaprofile/internal/catalog"
	"github.com/tvoe/dlnaprofile/internal/config"
	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/ffmpeg"
	"github.com/tvoe/dlnaprofile/internal/logging"
	"github.com/tvoe/dlnaprofile/internal/metrics"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	// Initialize repositories
	mediaRepo := db.NewMediaRepository(database)
	scanRepo := db.NewScanRepository(database)

	// Initialize S3 client
	s3Client, err := s3.New(cfg.S3)
	if err != nil {
		logger.Fatal("failed to initialize S3 client", zap.Error(err))
	}

	// Initialize Temporal client
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.Address,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.Fatal("failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	prober := ffmpeg.NewProber(cfg.FFmpeg.FFprobePath, cfg.FFmpeg.ProbeTimeout)
	catalogService := catalog.NewService(s3Client, prober, mediaRepo, m, logger)

	// Initialize handler
	handler := api.NewHandler(
		cfg,
		catalogService,
		scanRepo,
		api.Dependencies{Database: database, S3: s3Client},
		temporalClient,
		logger,
		m,
	)

	// Create router
	router := api.NewRouter(handler, prometheus.DefaultGatherer, logger)

	// Create server
	server := api.NewServer(cfg.API, router, logger)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	logger.Info("API server started",
		zap.Int("port", cfg.API.Port),
		zap.String("temporalAddress", cfg.Temporal.Address),
		zap.String("defaultBucket", cfg.S3.DefaultBucket),
	)

	// Wait for shutdown signal
	select {
	case <-sigChan:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	if err := server.Stop(context.Background()); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
