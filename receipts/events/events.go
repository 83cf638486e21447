// Package events carries receipt status transitions between the pipeline and
// anything that needs near-real-time updates (the dashboard stream, the view
// cache invalidation hook).
package events

import (
	"time"

	"encore.dev/pubsub"
)

// StatusEvent is published after every committed receipt status transition.
type StatusEvent struct {
	ReceiptID  int64     `json:"receipt_id"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prev_status,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

var StatusTopic = pubsub.NewTopic[*StatusEvent]("receipt-status", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})
