package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/receipts/business/receipt"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	ReceiptBusiness receipt.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(receiptBusiness receipt.Business) {
	activityDeps = &ActivityDependencies{
		ReceiptBusiness: receiptBusiness,
	}
}

func deps(ctx context.Context) (*ActivityDependencies, error) {
	if activityDeps == nil || activityDeps.ReceiptBusiness == nil {
		activity.GetLogger(ctx).Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return activityDeps, nil
}

// StartProcessingActivity transitions a receipt from pending to processing.
func StartProcessingActivity(ctx context.Context, receiptID int64) error {
	logger := activity.GetLogger(ctx)

	d, err := deps(ctx)
	if err != nil {
		return err
	}

	if err := d.ReceiptBusiness.StartProcessing(ctx, receiptID); err != nil {
		logger.Error("Failed to start processing", "receiptID", receiptID, "error", err)
		return err
	}

	logger.Info("Receipt moved to processing", "receiptID", receiptID)
	return nil
}

// ExtractReceiptActivity runs extraction on the stored image and attaches
// the result.
func ExtractReceiptActivity(ctx context.Context, receiptID int64) error {
	logger := activity.GetLogger(ctx)

	d, err := deps(ctx)
	if err != nil {
		return err
	}

	if err := d.ReceiptBusiness.ExtractReceipt(ctx, receiptID); err != nil {
		logger.Error("Failed to extract receipt", "receiptID", receiptID, "error", err)
		return err
	}

	logger.Info("Receipt extracted", "receiptID", receiptID)
	return nil
}

// AuditReceiptActivity applies the automatic audit decision to a processed
// receipt.
func AuditReceiptActivity(ctx context.Context, receiptID int64) error {
	logger := activity.GetLogger(ctx)

	d, err := deps(ctx)
	if err != nil {
		return err
	}

	if err := d.ReceiptBusiness.AuditReceipt(ctx, receiptID); err != nil {
		logger.Error("Failed to audit receipt", "receiptID", receiptID, "error", err)
		return err
	}

	logger.Info("Receipt audited", "receiptID", receiptID)
	return nil
}

// FailReceiptActivity marks a receipt failed with a reason. Failing to fail
// is not retried forever; a receipt stuck in processing is surfaced by the
// failure reason on the next read.
func FailReceiptActivity(ctx context.Context, receiptID int64, reason string) error {
	logger := activity.GetLogger(ctx)

	d, err := deps(ctx)
	if err != nil {
		return err
	}

	if err := d.ReceiptBusiness.FailReceipt(ctx, receiptID, reason); err != nil {
		logger.Error("Failed to mark receipt failed", "receiptID", receiptID, "reason", reason, "error", err)
		return temporal.NewNonRetryableApplicationError("failed to mark receipt failed", "RECEIPT_FAIL_TRANSITION", err)
	}

	logger.Info("Receipt marked failed", "receiptID", receiptID, "reason", reason)
	return nil
}

// CancelReceiptActivity marks a receipt canceled.
func CancelReceiptActivity(ctx context.Context, receiptID int64, reason string) error {
	logger := activity.GetLogger(ctx)

	d, err := deps(ctx)
	if err != nil {
		return err
	}

	if err := d.ReceiptBusiness.CancelReceipt(ctx, receiptID, reason); err != nil {
		logger.Error("Failed to cancel receipt", "receiptID", receiptID, "error", err)
		return err
	}

	logger.Info("Receipt canceled", "receiptID", receiptID, "reason", reason)
	return nil
}
