package receipts

import (
	"context"

	"encore.dev/rlog"

	"encore.app/receipts/model"
)

type ListReceiptsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListReceiptsResponse struct {
	Receipts   []model.Receipt `json:"receipts"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/receipts method=GET
func (s *Service) ListReceipts(ctx context.Context, req *ListReceiptsRequest) (*ListReceiptsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	receipts, totalCount, err := s.business.ListReceipts(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list receipts", "error", err)
		return nil, err
	}

	response := &ListReceiptsResponse{
		Receipts:   make([]model.Receipt, len(receipts)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, receipt := range receipts {
		response.Receipts[i] = *receipt
		// Warm the view cache so an immediately following detail open does
		// not pay for another fetch.
		s.viewCache.PrimePartial(receipt)
	}

	return response, nil
}
