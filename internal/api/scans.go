package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/temporal/workflows"
)

// CreateScanRequest selects the objects a scan will probe
type CreateScanRequest struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
}

// CreateScanResponse represents the response after starting a scan
type CreateScanResponse struct {
	ScanID     uuid.UUID         `json:"scanId"`
	WorkflowID string            `json:"workflowId"`
	Status     domain.ScanStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ScanStatusResponse represents scan status response
type ScanStatusResponse struct {
	*domain.CatalogScan
	Progress int `json:"progress"`
}

// CreateScan starts a catalog scan over a bucket prefix
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Bucket == "" {
		req.Bucket = h.config.S3.DefaultBucket
	}

	ctx := r.Context()

	scan := domain.NewCatalogScan(req.Bucket, req.Prefix)
	if err := h.scans.Create(ctx, scan); err != nil {
		h.logger.Error("failed to create scan", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to create scan")
		return
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        "catalog-scan-" + scan.ID.String(),
		TaskQueue: h.config.Temporal.TaskQueue,
	}

	workflowRun, err := h.temporalClient.ExecuteWorkflow(ctx, workflowOptions, workflows.CatalogScanWorkflow, workflows.CatalogScanWorkflowInput{
		ScanID: scan.ID,
	})
	if err != nil {
		h.logger.Error("failed to start workflow", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to start workflow")
		return
	}

	if err := h.scans.SetWorkflowID(ctx, scan.ID, workflowRun.GetID()); err != nil {
		h.logger.Error("failed to set workflow ID", zap.Error(err))
	}

	h.metrics.IncrementScansTotal(string(domain.ScanStatusQueued))
	h.logger.Info("scan created",
		zap.String("scanId", scan.ID.String()),
		zap.String("bucket", scan.Bucket),
		zap.String("prefix", scan.Prefix),
		zap.String("workflowId", workflowRun.GetID()),
	)

	h.writeJSON(w, http.StatusAccepted, CreateScanResponse{
		ScanID:     scan.ID,
		WorkflowID: workflowRun.GetID(),
		Status:     scan.Status,
		CreatedAt:  scan.CreatedAt,
	})
}

// GetScan returns scan status and counters
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	scan, ok := h.loadScan(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, ScanStatusResponse{CatalogScan: scan, Progress: scan.Progress()})
}

// CancelScan stops a running scan from dispatching further probes
func (h *Handler) CancelScan(w http.ResponseWriter, r *http.Request) {
	scan, ok := h.loadScan(w, r)
	if !ok {
		return
	}

	if scan.Status.IsTerminal() || scan.WorkflowID == nil {
		h.writeError(w, http.StatusBadRequest, "scan cannot be cancelled")
		return
	}

	if err := h.temporalClient.SignalWorkflow(r.Context(), *scan.WorkflowID, "", workflows.CancelSignal, nil); err != nil {
		h.logger.Error("failed to signal workflow", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to cancel scan")
		return
	}

	h.logger.Info("scan cancellation requested", zap.String("scanId", scan.ID.String()))
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "cancelling"})
}

func (h *Handler) loadScan(w http.ResponseWriter, r *http.Request) (*domain.CatalogScan, bool) {
	scanID, err := uuid.Parse(chi.URLParam(r, "scanId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid scan ID")
		return nil, false
	}

	scan, err := h.scans.GetByID(r.Context(), scanID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "scan not found")
			return nil, false
		}
		h.logger.Error("failed to get scan", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to get scan")
		return nil, false
	}

	return scan, true
}
