package activities

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/tvoe/dlnaprofile/internal/catalog"
	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

// startPeriodicHeartbeat starts a goroutine that sends heartbeats every interval
// Returns a cancel function to stop the goroutine
func startPeriodicHeartbeat(ctx context.Context, interval time.Duration, details interface{}) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				activity.RecordHeartbeat(ctx, details)
			}
		}
	}()
	return func() { close(done) }
}

// classifyError maps an error to a domain error code
func classifyError(err error) string {
	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, catalog.ErrUnsupportedMedia):
		return domain.ErrCodeUnsupportedMedia
	case errors.Is(err, s3.ErrObjectNotFound):
		return domain.ErrCodeS3NotFound
	case errors.Is(err, db.ErrNotFound):
		return domain.ErrCodeInternalError
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrCodeTimeout
	case errors.As(err, &exitErr):
		return domain.ErrCodeFFprobeFailed
	default:
		return domain.ErrCodeNetworkError
	}
}

// applicationError stops Temporal from retrying errors classified as fatal
func applicationError(code string, err error) error {
	if domain.ClassifyError(code) == domain.ErrorClassFatal {
		return temporal.NewNonRetryableApplicationError(err.Error(), code, err)
	}
	return temporal.NewApplicationError(err.Error(), code, err)
}
