package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/config"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/metrics"
)

// MediaCatalog probes objects and serves catalog entries
type MediaCatalog interface {
	ProbeObject(ctx context.Context, bucket, key string) (*domain.MediaItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error)
	List(ctx context.Context, bucket string, limit, offset int) ([]*domain.MediaItem, error)
}

// ScanStore persists catalog scans
type ScanStore interface {
	Create(ctx context.Context, scan *domain.CatalogScan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogScan, error)
	SetWorkflowID(ctx context.Context, id uuid.UUID, workflowID string) error
}

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Dependencies checked by /healthz and /readyz
type Dependencies struct {
	Database HealthChecker
	S3       HealthChecker
}

// Handler holds API dependencies
type Handler struct {
	config         *config.Config
	catalog        MediaCatalog
	scans          ScanStore
	deps           Dependencies
	temporalClient client.Client
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	catalog MediaCatalog,
	scans ScanStore,
	deps Dependencies,
	temporalClient client.Client,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		config:         cfg,
		catalog:        catalog,
		scans:          scans,
		deps:           deps,
		temporalClient: temporalClient,
		logger:         logger,
		metrics:        m,
	}
}

// HealthCheck returns health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{
		"status": "healthy",
	}

	for name, dep := range h.dependencies() {
		if err := dep.Health(ctx); err != nil {
			h.logger.Error("health check failed", zap.String("dependency", name), zap.Error(err))
			status[name] = "unhealthy"
			status["status"] = "unhealthy"
		} else {
			status[name] = "healthy"
		}
	}

	statusCode := http.StatusOK
	if status["status"] == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeJSON(w, statusCode, status)
}

// ReadyCheck returns readiness status
func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{
		"status": "ready",
	}

	for name, dep := range h.dependencies() {
		if err := dep.Health(ctx); err != nil {
			status["status"] = "not ready"
			status[name] = "not connected"
		}
	}

	statusCode := http.StatusOK
	if status["status"] != "ready" {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeJSON(w, statusCode, status)
}

func (h *Handler) dependencies() map[string]HealthChecker {
	deps := make(map[string]HealthChecker, 2)
	if h.deps.Database != nil {
		deps["database"] = h.deps.Database
	}
	if h.deps.S3 != nil {
		deps["s3"] = h.deps.S3
	}
	return deps
}

// queryInt reads a non-negative integer query parameter
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
