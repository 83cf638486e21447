package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

// CreateReceipt inserts a pending receipt row with explicit idempotency.
func (b *business) CreateReceipt(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	workflowID := fmt.Sprintf("receipt-%s", receipt.IdempotencyKey)

	dbReceipt, err := b.receiptRepo.CreateReceipt(ctx, receipts.CreateReceiptParams{
		Status:           string(model.ReceiptStatusPending),
		OriginalFilename: receipt.OriginalFilename,
		ContentType:      receipt.ContentType,
		SizeBytes:        receipt.SizeBytes,
		StorageKey:       receipt.StorageKey,
		IdempotencyKey:   receipt.IdempotencyKey,
		WorkflowID:       pgtype.Text{String: workflowID, Valid: true},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "receipt is duplicated"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create receipt"}
	}

	result := convertDBReceiptToModel(dbReceipt)
	b.publishStatus(ctx, result.ID, string(result.Status), "", "uploaded")

	return result, nil
}
