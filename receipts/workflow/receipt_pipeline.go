package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ReceiptPipelineParams contains parameters for starting the receipt
// processing pipeline.
type ReceiptPipelineParams struct {
	ReceiptID          int64         `json:"receipt_id"`
	ProcessingDeadline time.Duration `json:"processing_deadline"`
}

// DefaultProcessingDeadline bounds how long a receipt may sit in the
// pipeline before it is marked failed with processing_timeout.
const DefaultProcessingDeadline = 15 * time.Minute

// ReceiptPipeline manages the lifecycle of one uploaded receipt: it moves
// the receipt into processing, runs extraction and the automatic audit, and
// resolves cancellation signals and the processing deadline against the
// in-flight work.
func ReceiptPipeline(ctx workflow.Context, params ReceiptPipelineParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting receipt pipeline", "receiptID", params.ReceiptID)

	if params.ProcessingDeadline <= 0 {
		params.ProcessingDeadline = DefaultProcessingDeadline
	}

	cancelCh := workflow.GetSignalChannel(ctx, CancelReceiptSignalName)

	if err := startProcessing(ctx, params.ReceiptID); err != nil {
		logger.Error("Failed to move receipt into processing", "receiptID", params.ReceiptID, "error", err)
		return failReceipt(ctx, params.ReceiptID, "activation_failed")
	}

	extractCtx, cancelExtract := workflow.WithCancel(ctx)
	extractFuture := executeExtract(extractCtx, params.ReceiptID)
	deadline := workflow.NewTimer(ctx, params.ProcessingDeadline)

	resolved := false
	for !resolved {
		selector := workflow.NewSelector(ctx)

		selector.AddFuture(extractFuture, func(f workflow.Future) {
			resolved = true
			if err := f.Get(ctx, nil); err != nil {
				logger.Error("Extraction failed, marking receipt failed", "receiptID", params.ReceiptID, "error", err)
				if failErr := failReceipt(ctx, params.ReceiptID, "extraction_failed"); failErr != nil {
					logger.Error("Failed to mark receipt failed", "receiptID", params.ReceiptID, "error", failErr)
				}
				return
			}

			if err := auditReceipt(ctx, params.ReceiptID); err != nil {
				// The receipt stays processed and waits for a manual decision.
				logger.Error("Automatic audit failed, leaving receipt for manual review", "receiptID", params.ReceiptID, "error", err)
			}
		})

		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CancelReceiptSignal
			c.Receive(ctx, &signal)
			logger.Info("Received cancel signal", "receiptID", params.ReceiptID, "reason", signal.Reason)

			cancelExtract()
			resolved = true
			if err := cancelReceipt(ctx, params.ReceiptID, signal.Reason); err != nil {
				logger.Error("Failed to cancel receipt", "receiptID", params.ReceiptID, "error", err)
			}
		})

		selector.AddFuture(deadline, func(f workflow.Future) {
			logger.Warn("Processing deadline reached, failing receipt", "receiptID", params.ReceiptID)

			cancelExtract()
			resolved = true
			if err := failReceipt(ctx, params.ReceiptID, "processing_timeout"); err != nil {
				logger.Error("Failed to mark receipt failed after timeout", "receiptID", params.ReceiptID, "error", err)
			}
		})

		selector.Select(ctx)
	}

	logger.Info("Receipt pipeline completed", "receiptID", params.ReceiptID)
	return nil
}

// startProcessing executes the StartProcessing activity
func startProcessing(ctx workflow.Context, receiptID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, StartProcessingActivity, receiptID).Get(ctx, nil)
}

// executeExtract schedules the extraction activity and returns its future so
// the pipeline can race it against cancellation and the deadline.
func executeExtract(ctx workflow.Context, receiptID int64) workflow.Future {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ExtractReceiptActivity, receiptID)
}

// auditReceipt executes the AuditReceipt activity
func auditReceipt(ctx workflow.Context, receiptID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, AuditReceiptActivity, receiptID).Get(ctx, nil)
}

// failReceipt executes the FailReceipt activity
func failReceipt(ctx workflow.Context, receiptID int64, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, FailReceiptActivity, receiptID, reason).Get(ctx, nil)
}

// cancelReceipt executes the CancelReceipt activity
func cancelReceipt(ctx workflow.Context, receiptID int64, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CancelReceiptActivity, receiptID, reason).Get(ctx, nil)
}
