package receipts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/receipts/model"
	"encore.app/receipts/viewcache"
	"encore.app/receipts/workflow"
)

type CancelReceiptRequest struct {
	Reason     string `json:"reason" validate:"required,max=255"`
	CanceledBy string `json:"canceled_by" validate:"omitempty,max=100"`
}

type CancelReceiptResponse struct {
	Receipt model.Receipt `json:"receipt"`
}

//encore:api public path=/v1/receipts/:id/cancel method=POST tag:idempotency
func (s *Service) CancelReceipt(ctx context.Context, id int, req *CancelReceiptRequest) (*CancelReceiptResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid receipt ID"}
	}

	receipt, err := s.business.GetReceipt(ctx, int64(id))
	if err != nil {
		rlog.Error("failed to get receipt for cancel", "error", err, "id", id)
		return nil, err
	}

	if receipt.Status.Terminal() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "receipt can no longer be canceled"}
	}

	// Prefer canceling through the pipeline so in-flight extraction stops
	// too; fall back to a direct transition when there is no workflow to
	// signal.
	signaled := false
	if receipt.WorkflowID != nil {
		signal := workflow.CancelReceiptSignal{Reason: req.Reason, CanceledBy: req.CanceledBy}
		if sigErr := s.temporal.SignalWorkflow(ctx, *receipt.WorkflowID, "", workflow.CancelReceiptSignalName, signal); sigErr != nil {
			rlog.Error("failed to signal workflow, canceling directly", "error", sigErr, "id", id, "workflow_id", *receipt.WorkflowID)
		} else {
			signaled = true
		}
	}
	if !signaled {
		if err := s.business.CancelReceipt(ctx, int64(id), req.Reason); err != nil {
			rlog.Error("failed to cancel receipt", "error", err, "id", id)
			return nil, err
		}

		// The receipt is already canceled; stop the orphaned pipeline in the
		// background so it does not keep running activities against it.
		if receipt.WorkflowID != nil {
			workflowID := *receipt.WorkflowID
			runAsync("terminate-receipt-workflow", func(ctx context.Context) error {
				return s.temporal.TerminateWorkflow(ctx, workflowID, "", "canceled_directly")
			})
		}
	}

	// The transition may land asynchronously; force the next read to refetch.
	s.viewCache.Invalidate(viewcache.KeyFromID(int64(id)))

	result, err := s.business.GetReceipt(ctx, int64(id))
	if err != nil {
		rlog.Error("failed to get receipt after cancel", "error", err, "id", id)
		return nil, err
	}

	return &CancelReceiptResponse{
		Receipt: *result,
	}, nil
}

// Validate implements validation for CancelReceiptRequest
func (r *CancelReceiptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
