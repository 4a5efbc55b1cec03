package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tvoe/dlnaprofile/internal/domain"
)

// ScanCounts holds the absolute object counters of a scan
type ScanCounts struct {
	Total      int
	Resolved   int
	Unresolved int
	Failed     int
}

// ScanRepository handles catalog scan persistence
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create creates a new scan
func (r *ScanRepository) Create(ctx context.Context, scan *domain.CatalogScan) error {
	query := `
		INSERT INTO catalog_scans (
			id, bucket, prefix, status, total, resolved, unresolved, failed,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		scan.ID,
		scan.Bucket,
		scan.Prefix,
		scan.Status,
		scan.Total,
		scan.Resolved,
		scan.Unresolved,
		scan.Failed,
		scan.CreatedAt,
		scan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scan: %w", err)
	}

	return nil
}

// GetByID retrieves a scan by ID
func (r *ScanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogScan, error) {
	query := `
		SELECT id, bucket, prefix, status, workflow_id, total, resolved, unresolved,
			failed, last_error, created_at, started_at, updated_at, finished_at
		FROM catalog_scans
		WHERE id = $1
	`

	var scan domain.CatalogScan
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&scan.ID,
		&scan.Bucket,
		&scan.Prefix,
		&scan.Status,
		&scan.WorkflowID,
		&scan.Total,
		&scan.Resolved,
		&scan.Unresolved,
		&scan.Failed,
		&scan.LastError,
		&scan.CreatedAt,
		&scan.StartedAt,
		&scan.UpdatedAt,
		&scan.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan catalog scan: %w", err)
	}

	return &scan, nil
}

// SetWorkflowID sets the Temporal workflow ID for a scan
func (r *ScanRepository) SetWorkflowID(ctx context.Context, id uuid.UUID, workflowID string) error {
	query := `UPDATE catalog_scans SET workflow_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, query, id, workflowID)
	return err
}

// SetRunning marks a scan as running with the number of objects found
func (r *ScanRepository) SetRunning(ctx context.Context, id uuid.UUID, total int) error {
	query := `
		UPDATE catalog_scans
		SET status = $2, total = $3, started_at = COALESCE(started_at, NOW()), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Pool.Exec(ctx, query, id, domain.ScanStatusRunning, total)
	return err
}

// UpdateProgress overwrites the counters of a running scan
func (r *ScanRepository) UpdateProgress(ctx context.Context, id uuid.UUID, counts ScanCounts) error {
	query := `
		UPDATE catalog_scans
		SET total = $2, resolved = $3, unresolved = $4, failed = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Pool.Exec(ctx, query, id, counts.Total, counts.Resolved, counts.Unresolved, counts.Failed)
	return err
}

// SetFinished records the terminal status and final counters of a scan
func (r *ScanRepository) SetFinished(ctx context.Context, id uuid.UUID, status domain.ScanStatus, counts ScanCounts, lastError *string) error {
	query := `
		UPDATE catalog_scans
		SET status = $2, total = $3, resolved = $4, unresolved = $5, failed = $6,
			last_error = $7, finished_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Pool.Exec(ctx, query, id, status,
		counts.Total, counts.Resolved, counts.Unresolved, counts.Failed, lastError)
	return err
}
