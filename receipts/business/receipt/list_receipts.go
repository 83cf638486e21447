package receipt

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

// ListReceipts retrieves receipts with pagination, newest first.
func (b *business) ListReceipts(ctx context.Context, limit, offset int32) ([]*model.Receipt, int64, error) {
	dbReceipts, err := b.receiptRepo.ListReceipts(ctx, receipts.ListReceiptsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list receipts"}
	}

	totalCount, err := b.receiptRepo.CountReceipts(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count receipts"}
	}

	receiptList := make([]*model.Receipt, len(dbReceipts))
	for i, dbReceipt := range dbReceipts {
		receiptList[i] = convertDBReceiptToModel(dbReceipt)
	}

	return receiptList, totalCount, nil
}
