package receipt

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
)

// StartProcessing moves a pending receipt into processing. Called by the
// pipeline when the extraction activity is about to run.
func (b *business) StartProcessing(ctx context.Context, id int64) error {
	updated, err := b.stateMachine.TransitionToProcessing(ctx, id)
	if err != nil {
		return err
	}

	b.publishStatus(ctx, id, updated.Status, "pending", "")
	return nil
}

// ExtractReceipt downloads the stored image, runs it through the extraction
// service and attaches the result, moving the receipt to processed.
func (b *business) ExtractReceipt(ctx context.Context, id int64) error {
	dbReceipt, err := b.receiptRepo.GetReceipt(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "receipt not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to get receipt"}
	}

	image, err := b.images.Download(ctx, dbReceipt.StorageKey)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to read stored receipt image"}
	}

	data, err := b.extractor.Extract(ctx, image, dbReceipt.ContentType)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "extraction service failed"}
	}

	updated, err := b.stateMachine.AttachExtraction(ctx, id, data)
	if err != nil {
		return err
	}

	b.publishStatus(ctx, id, updated.Status, dbReceipt.Status, "")
	return nil
}

// AuditReceipt asks the extraction service for an automatic decision on a
// processed receipt and applies it.
func (b *business) AuditReceipt(ctx context.Context, id int64) error {
	receipt, err := b.GetReceipt(ctx, id)
	if err != nil {
		return err
	}

	if receipt.ExtractedData == nil {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "receipt has no extracted data to audit"}
	}

	decision, err := b.extractor.Audit(ctx, receipt.ExtractedData)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "audit service failed"}
	}

	updated, err := b.stateMachine.ApplyAuditDecision(ctx, id, decision)
	if err != nil {
		return err
	}

	b.publishStatus(ctx, id, updated.Status, string(receipt.Status), decision.Decision)
	return nil
}

// FailReceipt marks a receipt as failed with a reason.
func (b *business) FailReceipt(ctx context.Context, id int64, reason string) error {
	updated, err := b.stateMachine.TransitionToFailed(ctx, id, reason)
	if err != nil {
		return err
	}

	b.publishStatus(ctx, id, updated.Status, "", reason)
	return nil
}

// CancelReceipt cancels a receipt that has not finished processing.
func (b *business) CancelReceipt(ctx context.Context, id int64, reason string) error {
	updated, err := b.stateMachine.TransitionToCanceled(ctx, id, reason)
	if err != nil {
		return err
	}

	b.publishStatus(ctx, id, updated.Status, "", reason)
	return nil
}
