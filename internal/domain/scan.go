package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanStatus represents the status of a catalog scan
type ScanStatus string

const (
	ScanStatusQueued    ScanStatus = "QUEUED"
	ScanStatusRunning   ScanStatus = "RUNNING"
	ScanStatusCompleted ScanStatus = "COMPLETED"
	ScanStatusFailed    ScanStatus = "FAILED"
	ScanStatusCancelled ScanStatus = "CANCELLED"
)

// IsTerminal returns true if the scan will not change any more
func (s ScanStatus) IsTerminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed || s == ScanStatusCancelled
}

// CatalogScan represents a bulk probe-and-resolve run over a bucket prefix
type CatalogScan struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Bucket     string     `json:"bucket" db:"bucket"`
	Prefix     string     `json:"prefix" db:"prefix"`
	Status     ScanStatus `json:"status" db:"status"`
	WorkflowID *string    `json:"workflowId,omitempty" db:"workflow_id"`
	Total      int        `json:"total" db:"total"`
	Resolved   int        `json:"resolved" db:"resolved"`
	Unresolved int        `json:"unresolved" db:"unresolved"`
	Failed     int        `json:"failed" db:"failed"`
	LastError  *string    `json:"lastError,omitempty" db:"last_error"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	StartedAt  *time.Time `json:"startedAt,omitempty" db:"started_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
	FinishedAt *time.Time `json:"finishedAt,omitempty" db:"finished_at"`
}

// NewCatalogScan creates a queued scan
func NewCatalogScan(bucket, prefix string) *CatalogScan {
	now := time.Now().UTC()
	return &CatalogScan{
		ID:        uuid.New(),
		Bucket:    bucket,
		Prefix:    prefix,
		Status:    ScanStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Processed returns the number of objects handled so far
func (s *CatalogScan) Processed() int {
	return s.Resolved + s.Unresolved + s.Failed
}

// Progress returns completion in percent
func (s *CatalogScan) Progress() int {
	if s.Total == 0 {
		if s.Status.IsTerminal() {
			return 100
		}
		return 0
	}
	return s.Processed() * 100 / s.Total
}
