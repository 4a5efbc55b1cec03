package activities

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/catalog"
	"github.com/tvoe/dlnaprofile/internal/config"
	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/metrics"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

// Activities holds all activity implementations
type Activities struct {
	config   *config.Config
	scanRepo *db.ScanRepository
	s3Client *s3.Client
	catalog  *catalog.Service
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewActivities creates a new activities instance
func NewActivities(
	cfg *config.Config,
	scanRepo *db.ScanRepository,
	s3Client *s3.Client,
	catalogService *catalog.Service,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Activities {
	return &Activities{
		config:   cfg,
		scanRepo: scanRepo,
		s3Client: s3Client,
		catalog:  catalogService,
		logger:   logger,
		metrics:  m,
	}
}

// ScanInput holds common input for scan activities
type ScanInput struct {
	ScanID uuid.UUID `json:"scanId"`
}

// MarkScanRunning moves a scan to RUNNING
func (a *Activities) MarkScanRunning(ctx context.Context, input ScanInput) error {
	if err := a.scanRepo.SetRunning(ctx, input.ScanID, 0); err != nil {
		return applicationError(domain.ErrCodeDatabaseError, err)
	}
	a.metrics.IncrementScansActive()
	return nil
}

// ListSourceObjectsOutput holds the objects a scan will probe
type ListSourceObjectsOutput struct {
	Bucket      string   `json:"bucket"`
	Keys        []string `json:"keys"`
	Parallelism int      `json:"parallelism"`
}

// ListSourceObjects lists the media objects under the scan prefix
func (a *Activities) ListSourceObjects(ctx context.Context, input ScanInput) (*ListSourceObjectsOutput, error) {
	logger := a.logger.With(zap.String("scanId", input.ScanID.String()), zap.String("activity", "ListSourceObjects"))

	scan, err := a.scanRepo.GetByID(ctx, input.ScanID)
	if err != nil {
		return nil, applicationError(classifyError(err), err)
	}

	stopHeartbeat := startPeriodicHeartbeat(ctx, 30*time.Second, "listing objects")
	objects, err := a.s3Client.ListMedia(ctx, scan.Bucket, scan.Prefix, a.config.Scan.MaxObjects, domain.IsExtensionSupported)
	stopHeartbeat()
	if err != nil {
		return nil, applicationError(classifyError(err), err)
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}

	if err := a.scanRepo.UpdateProgress(ctx, input.ScanID, db.ScanCounts{Total: len(keys)}); err != nil {
		logger.Error("failed to update scan total", zap.Error(err))
	}

	logger.Info("objects listed",
		zap.String("bucket", scan.Bucket),
		zap.String("prefix", scan.Prefix),
		zap.Int("count", len(keys)),
	)

	return &ListSourceObjectsOutput{
		Bucket:      scan.Bucket,
		Keys:        keys,
		Parallelism: a.config.Scan.Parallelism,
	}, nil
}

// ProbeAndResolveInput identifies one object of a scan
type ProbeAndResolveInput struct {
	ScanID uuid.UUID `json:"scanId"`
	Bucket string    `json:"bucket"`
	Key    string    `json:"key"`
}

// ProbeAndResolveOutput holds the outcome for one object
type ProbeAndResolveOutput struct {
	MediaID  uuid.UUID `json:"mediaId"`
	Profiles []string  `json:"profiles"`
	Resolved bool      `json:"resolved"`
}

// ProbeAndResolve probes one object, resolves its profiles and stores it
func (a *Activities) ProbeAndResolve(ctx context.Context, input ProbeAndResolveInput) (*ProbeAndResolveOutput, error) {
	activity.RecordHeartbeat(ctx, input.Key)

	item, err := a.catalog.ProbeForScan(ctx, input.ScanID, input.Bucket, input.Key)
	if err != nil {
		a.logger.Warn("object not catalogued",
			zap.String("scanId", input.ScanID.String()),
			zap.String("key", input.Key),
			zap.Error(err),
		)
		return nil, applicationError(classifyError(err), err)
	}

	profiles := make([]string, 0, len(item.Profiles))
	for _, p := range item.Profiles {
		profiles = append(profiles, p.String())
	}

	return &ProbeAndResolveOutput{
		MediaID:  item.ID,
		Profiles: profiles,
		Resolved: item.Resolved(),
	}, nil
}

// ScanProgressInput holds absolute scan counters
type ScanProgressInput struct {
	ScanID     uuid.UUID `json:"scanId"`
	Total      int       `json:"total"`
	Resolved   int       `json:"resolved"`
	Unresolved int       `json:"unresolved"`
	Failed     int       `json:"failed"`
}

func (in ScanProgressInput) counts() db.ScanCounts {
	return db.ScanCounts{
		Total:      in.Total,
		Resolved:   in.Resolved,
		Unresolved: in.Unresolved,
		Failed:     in.Failed,
	}
}

// RecordScanProgress stores the counters of a running scan
func (a *Activities) RecordScanProgress(ctx context.Context, input ScanProgressInput) error {
	if err := a.scanRepo.UpdateProgress(ctx, input.ScanID, input.counts()); err != nil {
		return applicationError(domain.ErrCodeDatabaseError, err)
	}
	return nil
}

// FinalizeScanInput holds the terminal state of a scan
type FinalizeScanInput struct {
	ScanProgressInput
	Status domain.ScanStatus `json:"status"`
	Error  string            `json:"error,omitempty"`
}

// FinalizeScan records the terminal status and counters of a scan
func (a *Activities) FinalizeScan(ctx context.Context, input FinalizeScanInput) error {
	logger := a.logger.With(zap.String("scanId", input.ScanID.String()), zap.String("activity", "FinalizeScan"))

	var lastError *string
	if input.Error != "" {
		lastError = &input.Error
	}

	if err := a.scanRepo.SetFinished(ctx, input.ScanID, input.Status, input.counts(), lastError); err != nil {
		return applicationError(domain.ErrCodeDatabaseError, err)
	}

	a.metrics.DecrementScansActive()
	a.metrics.IncrementScansTotal(string(input.Status))
	a.metrics.AddScanObjects(metrics.OutcomeMatched, input.Resolved)
	a.metrics.AddScanObjects(metrics.OutcomeNoMatch, input.Unresolved)
	a.metrics.AddScanObjects(metrics.OutcomeProbeFail, input.Failed)

	logger.Info("scan finalized",
		zap.String("status", string(input.Status)),
		zap.Int("total", input.Total),
		zap.Int("resolved", input.Resolved),
		zap.Int("unresolved", input.Unresolved),
		zap.Int("failed", input.Failed),
	)

	return nil
}
