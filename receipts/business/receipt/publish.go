package receipt

import (
	"context"
	"time"

	"encore.dev/rlog"

	"encore.app/receipts/events"
)

// publishStatus announces a committed status transition on the status topic.
// Publishing is best-effort: a failed publish is logged and never fails the
// operation that caused it, since subscribers only use events to refresh
// cached views.
func (b *business) publishStatus(ctx context.Context, id int64, status, prevStatus, reason string) {
	_, err := events.StatusTopic.Publish(ctx, &events.StatusEvent{
		ReceiptID:  id,
		Status:     status,
		PrevStatus: prevStatus,
		Reason:     reason,
		OccurredAt: time.Now(),
	})
	if err != nil {
		rlog.Error("failed to publish status event", "receipt_id", id, "status", status, "error", err)
	}
}
