package receipt

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/receipts/model"
)

// GetReceipt retrieves a receipt by ID.
func (b *business) GetReceipt(ctx context.Context, id int64) (*model.Receipt, error) {
	dbReceipt, err := b.receiptRepo.GetReceipt(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "receipt not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get receipt"}
	}

	return convertDBReceiptToModel(dbReceipt), nil
}
