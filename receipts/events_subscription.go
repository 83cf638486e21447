package receipts

import (
	"context"

	"encore.dev/pubsub"
	"encore.dev/rlog"

	"encore.app/receipts/events"
	"encore.app/receipts/viewcache"
)

// Status changes can originate outside the request path (pipeline
// activities, manual audits from another instance), so every instance
// drops its cached view when one is announced.
var _ = pubsub.NewSubscription(
	events.StatusTopic, "view-cache-invalidation",
	pubsub.SubscriptionConfig[*events.StatusEvent]{
		Handler: pubsub.MethodHandler((*Service).InvalidateView),
	},
)

func (s *Service) InvalidateView(ctx context.Context, event *events.StatusEvent) error {
	s.viewCache.Invalidate(viewcache.KeyFromID(event.ReceiptID))
	rlog.Debug("invalidated cached view", "receipt_id", event.ReceiptID, "status", event.Status)
	return nil
}
