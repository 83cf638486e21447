package receipt

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/receipts/model"
)

// RecordAuditDecision applies a manual reviewer decision to a processed
// receipt, moving it to completed or rejected.
func (b *business) RecordAuditDecision(ctx context.Context, id int64, decision *model.AuditDecision) (*model.Receipt, error) {
	if decision == nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "audit decision is required"}
	}

	decision.Automatic = false
	if decision.DecidedAt.IsZero() {
		decision.DecidedAt = time.Now()
	}

	updated, err := b.stateMachine.ApplyAuditDecision(ctx, id, decision)
	if err != nil {
		return nil, err
	}

	b.publishStatus(ctx, id, updated.Status, string(model.ReceiptStatusProcessed), decision.Decision)
	return convertDBReceiptToModel(updated), nil
}
