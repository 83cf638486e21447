package receipt

import (
	"encoding/json"

	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

// convertDBReceiptToModel converts a database Receipt to a domain model Receipt
func convertDBReceiptToModel(dbReceipt receipts.Receipt) *model.Receipt {
	receipt := &model.Receipt{
		ID:               dbReceipt.ID,
		Status:           model.ReceiptStatus(dbReceipt.Status),
		OriginalFilename: dbReceipt.OriginalFilename,
		ContentType:      dbReceipt.ContentType,
		SizeBytes:        dbReceipt.SizeBytes,
		StorageKey:       dbReceipt.StorageKey,
		IdempotencyKey:   dbReceipt.IdempotencyKey,
		CreatedAt:        dbReceipt.CreatedAt.Time,
		UpdatedAt:        dbReceipt.UpdatedAt.Time,
	}

	if dbReceipt.FailureReason.Valid {
		receipt.FailureReason = &dbReceipt.FailureReason.String
	}

	if dbReceipt.WorkflowID.Valid {
		receipt.WorkflowID = &dbReceipt.WorkflowID.String
	}

	if dbReceipt.ProcessedAt.Valid {
		receipt.ProcessedAt = &dbReceipt.ProcessedAt.Time
	}

	if len(dbReceipt.ExtractedData) > 0 {
		var data model.ExtractedData
		if err := json.Unmarshal(dbReceipt.ExtractedData, &data); err == nil {
			receipt.ExtractedData = &data
		}
	}

	if len(dbReceipt.AuditDecision) > 0 {
		var decision model.AuditDecision
		if err := json.Unmarshal(dbReceipt.AuditDecision, &decision); err == nil {
			receipt.AuditDecision = &decision
		}
	}

	return receipt
}
