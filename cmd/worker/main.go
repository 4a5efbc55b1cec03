package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/catalog"
	"github.com/tvoe/dlnaprofile/internal/config"
	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/ffmpeg"
	"github.com/tvoe/dlnaprofile/internal/logging"
	"github.com/tvoe/dlnaprofile/internal/metrics"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
	"github.com/tvoe/dlnaprofile/internal/temporal/activities"
	"github.com/tvoe/dlnaprofile/internal/temporal/workflows"
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

	// Create activities
	acts := activities.NewActivities(
		cfg,
		scanRepo,
		s3Client,
		catalogService,
		logger,
		m,
	)

	// Create worker
	w := worker.New(temporalClient, cfg.Temporal.TaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize:     cfg.Scan.WorkerMaxTasks,
		MaxConcurrentWorkflowTaskExecutionSize: cfg.Scan.WorkerMaxTasks * 2,
	})

	// Register workflows
	w.RegisterWorkflow(workflows.CatalogScanWorkflow)

	// Register activities
	w.RegisterActivity(acts.MarkScanRunning)
	w.RegisterActivity(acts.ListSourceObjects)
	w.RegisterActivity(acts.ProbeAndResolve)
	w.RegisterActivity(acts.RecordScanProgress)
	w.RegisterActivity(acts.FinalizeScan)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start metrics server
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		metricsAddr := fmt.Sprintf(":%d", cfg.Scan.MetricsPort)
		logger.Info("starting metrics server", zap.String("addr", metricsAddr))
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	// Watch backing services
	go monitorDependencies(ctx, logger, map[string]func(context.Context) error{
		"database": database.Health,
		"s3":       s3Client.Health,
	})

	// Start worker in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Run(worker.InterruptCh())
	}()

	logger.Info("worker started",
		zap.String("taskQueue", cfg.Temporal.TaskQueue),
		zap.Int("maxTasks", cfg.Scan.WorkerMaxTasks),
		zap.Int("scanParallelism", cfg.Scan.Parallelism),
		zap.String("ffprobe", cfg.FFmpeg.FFprobePath),
	)

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil {
			logger.Error("worker error", zap.Error(err))
		}
	}

	cancel()
	w.Stop()
	logger.Info("worker stopped")
}

// monitorDependencies logs backing services that stop answering health checks
func monitorDependencies(ctx context.Context, logger *zap.Logger, checks map[string]func(context.Context) error) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for name, check := range checks {
				checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				if err := check(checkCtx); err != nil {
					logger.Warn("dependency unhealthy", zap.String("dependency", name), zap.Error(err))
				}
				cancel()
			}
		}
	}
}
