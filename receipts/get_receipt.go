package receipts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/receipts/viewcache"
)

//encore:api public path=/v1/receipts/:id method=GET
func (s *Service) GetReceipt(ctx context.Context, id int) (*ReceiptResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid receipt ID"}
	}

	// Serve from the view cache when the entry is full and still fresh.
	key := viewcache.KeyFromID(int64(id))
	if entry, ok := s.viewCache.Get(key); ok && !entry.Partial && s.viewCache.Fresh(entry) {
		return &ReceiptResponse{Receipt: entry.Receipt}, nil
	}

	result, err := s.business.GetReceipt(ctx, int64(id))
	if err != nil {
		rlog.Error("failed to get receipt", "error", err, "id", id)
		return nil, err
	}

	s.viewCache.SetFull(key, *result)

	return &ReceiptResponse{
		Receipt: *result,
	}, nil
}
