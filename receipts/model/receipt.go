package model

import (
	"time"
)

type Receipt struct {
	ID               int64            `json:"id"`
	Status           ReceiptStatus    `json:"status"`
	OriginalFilename string           `json:"original_filename"`
	ContentType      string           `json:"content_type"`
	SizeBytes        int64            `json:"size_bytes"`
	StorageKey       string           `json:"storage_key"`
	ExtractedData    *ExtractedData   `json:"extracted_data,omitempty"`
	AuditDecision    *AuditDecision   `json:"audit_decision,omitempty"`
	FailureReason    *string          `json:"failure_reason,omitempty"`
	IdempotencyKey   string           `json:"idempotency_key"`
	WorkflowID       *string          `json:"workflow_id,omitempty"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type ReceiptStatus string

const (
	ReceiptStatusPending    ReceiptStatus = "pending"
	ReceiptStatusProcessing ReceiptStatus = "processing"
	ReceiptStatusProcessed  ReceiptStatus = "processed"
	ReceiptStatusCompleted  ReceiptStatus = "completed"
	ReceiptStatusRejected   ReceiptStatus = "rejected"
	ReceiptStatusFailed     ReceiptStatus = "failed"
	ReceiptStatusCanceled   ReceiptStatus = "canceled"
)

// Terminal reports whether the status is one a receipt never leaves.
func (s ReceiptStatus) Terminal() bool {
	switch s {
	case ReceiptStatusProcessed, ReceiptStatusCompleted, ReceiptStatusRejected,
		ReceiptStatusFailed, ReceiptStatusCanceled:
		return true
	}
	return false
}

// ExtractedData is the structured result produced by the extraction service
// for a single receipt image.
type ExtractedData struct {
	Merchant    string  `json:"merchant"`
	PurchasedAt string  `json:"purchased_at"` // ISO 8601
	TotalCents  int64   `json:"total_cents"`
	Currency    string  `json:"currency"`
	TaxCents    int64   `json:"tax_cents,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// AuditDecision records the outcome of auditing an extracted receipt,
// either automatic (pipeline) or manual (reviewer).
type AuditDecision struct {
	Decision  string    `json:"decision"` // "approve" or "reject"
	Reviewer  string    `json:"reviewer,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Automatic bool      `json:"automatic"`
	DecidedAt time.Time `json:"decided_at"`
}

const (
	AuditDecisionApprove = "approve"
	AuditDecisionReject  = "reject"
)
