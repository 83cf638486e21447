package receipts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/receipts/model"
	"encore.app/receipts/viewcache"
)

type AuditReceiptRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Reviewer string `json:"reviewer" validate:"required,max=100"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type AuditReceiptResponse struct {
	Receipt model.Receipt `json:"receipt"`
}

//encore:api public path=/v1/receipts/:id/audit method=POST tag:idempotency
func (s *Service) AuditReceipt(ctx context.Context, id int, req *AuditReceiptRequest) (*AuditReceiptResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid receipt ID"}
	}

	result, err := s.business.RecordAuditDecision(ctx, int64(id), &model.AuditDecision{
		Decision: req.Decision,
		Reviewer: req.Reviewer,
		Notes:    req.Notes,
	})
	if err != nil {
		rlog.Error("failed to record audit decision", "error", err, "id", id)
		return nil, err
	}

	s.viewCache.SetFull(viewcache.KeyFromID(result.ID), *result)

	return &AuditReceiptResponse{
		Receipt: *result,
	}, nil
}

// Validate implements validation for AuditReceiptRequest
func (r *AuditReceiptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
