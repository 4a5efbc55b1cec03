package workflows

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/temporal/activities"
)

// CancelSignal stops a scan from dispatching further probes
const CancelSignal = "cancel"

// progressEvery is the number of finished probes between progress updates
const progressEvery = 25

// CatalogScanWorkflowInput holds workflow input
type CatalogScanWorkflowInput struct {
	ScanID uuid.UUID `json:"scanId"`
}

// CatalogScanWorkflowOutput holds workflow output
type CatalogScanWorkflowOutput struct {
	Status     domain.ScanStatus `json:"status"`
	Total      int               `json:"total"`
	Resolved   int               `json:"resolved"`
	Unresolved int               `json:"unresolved"`
	Failed     int               `json:"failed"`
	Error      string            `json:"error,omitempty"`
}

func (o *CatalogScanWorkflowOutput) progress(scanID uuid.UUID) activities.ScanProgressInput {
	return activities.ScanProgressInput{
		ScanID:     scanID,
		Total:      o.Total,
		Resolved:   o.Resolved,
		Unresolved: o.Unresolved,
		Failed:     o.Failed,
	}
}

// CatalogScanWorkflow probes every media object under a bucket prefix and
// stores the resolved profiles. Objects that fail to probe are counted and
// do not fail the scan.
func CatalogScanWorkflow(ctx workflow.Context, input CatalogScanWorkflowInput) (*CatalogScanWorkflowOutput, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting catalog scan workflow", "scanId", input.ScanID.String())

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Minute,
		HeartbeatTimeout:    2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	output := &CatalogScanWorkflowOutput{
		Status: domain.ScanStatusRunning,
	}
	defer func() {
		finalizeCtx, _ := workflow.NewDisconnectedContext(ctx)
		finalizeOptions := workflow.ActivityOptions{
			StartToCloseTimeout: 1 * time.Minute,
			RetryPolicy: &temporal.RetryPolicy{
				InitialInterval:    time.Second,
				BackoffCoefficient: 2.0,
				MaximumInterval:    10 * time.Second,
				MaximumAttempts:    5,
			},
		}
		finalizeCtx = workflow.WithActivityOptions(finalizeCtx, finalizeOptions)

		_ = workflow.ExecuteActivity(finalizeCtx, "FinalizeScan", activities.FinalizeScanInput{
			ScanProgressInput: output.progress(input.ScanID),
			Status:            output.Status,
			Error:             output.Error,
		}).Get(finalizeCtx, nil)
	}()

	scanInput := activities.ScanInput{ScanID: input.ScanID}

	if err := workflow.ExecuteActivity(ctx, "MarkScanRunning", scanInput).Get(ctx, nil); err != nil {
		output.Status = domain.ScanStatusFailed
		output.Error = fmt.Sprintf("failed to start scan: %v", err)
		return output, err
	}

	var listing *activities.ListSourceObjectsOutput
	if err := workflow.ExecuteActivity(ctx, "ListSourceObjects", scanInput).Get(ctx, &listing); err != nil {
		output.Status = domain.ScanStatusFailed
		output.Error = fmt.Sprintf("listing failed: %v", err)
		return output, err
	}
	output.Total = len(listing.Keys)
	logger.Info("Objects listed", "count", output.Total)

	parallelism := listing.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	probeOptions := activityOptions
	probeOptions.StartToCloseTimeout = 5 * time.Minute
	probeCtx := workflow.WithActivityOptions(ctx, probeOptions)

	selector := workflow.NewSelector(ctx)

	var cancelled bool
	selector.AddReceive(workflow.GetSignalChannel(ctx, CancelSignal), func(c workflow.ReceiveChannel, more bool) {
		c.Receive(ctx, nil)
		cancelled = true
		logger.Info("Received cancel signal")
	})

	pending := 0
	onProbed := func(f workflow.Future) {
		pending--
		var result activities.ProbeAndResolveOutput
		if err := f.Get(ctx, &result); err != nil {
			output.Failed++
			return
		}
		if result.Resolved {
			output.Resolved++
		} else {
			output.Unresolved++
		}
	}

	next := 0
	reported := 0
	for {
		for !cancelled && pending < parallelism && next < len(listing.Keys) {
			f := workflow.ExecuteActivity(probeCtx, "ProbeAndResolve", activities.ProbeAndResolveInput{
				ScanID: input.ScanID,
				Bucket: listing.Bucket,
				Key:    listing.Keys[next],
			})
			selector.AddFuture(f, onProbed)
			pending++
			next++
		}
		if pending == 0 {
			break
		}

		selector.Select(ctx)

		processed := output.Resolved + output.Unresolved + output.Failed
		if processed-reported >= progressEvery {
			reported = processed
			if err := workflow.ExecuteActivity(ctx, "RecordScanProgress", output.progress(input.ScanID)).Get(ctx, nil); err != nil {
				logger.Warn("Progress update failed", "error", err)
			}
		}
	}

	if cancelled {
		output.Status = domain.ScanStatusCancelled
		output.Error = "cancelled by user"
		logger.Info("Catalog scan cancelled", "scanId", input.ScanID.String(), "skipped", output.Total-next)
		return output, nil
	}

	output.Status = domain.ScanStatusCompleted
	logger.Info("Catalog scan workflow completed",
		"scanId", input.ScanID.String(),
		"resolved", output.Resolved,
		"unresolved", output.Unresolved,
		"failed", output.Failed)

	return output, nil
}
