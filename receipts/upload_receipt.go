package receipts

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/objects"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/receipts/model"
	"encore.app/receipts/viewcache"
	"encore.app/receipts/workflow"
)

type UploadReceiptRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=100"`
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type ReceiptResponse struct {
	Receipt model.Receipt `json:"receipt"`
}

//encore:api public path=/v1/receipts method=POST tag:idempotency
func (s *Service) UploadReceipt(ctx context.Context, req *UploadReceiptRequest) (*ReceiptResponse, error) {
	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "image_base64 is not valid base64"}
	}

	storageKey := fmt.Sprintf("receipts/%s/%s", uuid.NewString(), req.Filename)
	if err := s.storeImage(ctx, storageKey, req.ContentType, image); err != nil {
		rlog.Error("failed to store receipt image", "error", err, "storage_key", storageKey)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to store receipt image"}
	}

	result, err := s.business.CreateReceipt(ctx, &model.Receipt{
		OriginalFilename: req.Filename,
		ContentType:      req.ContentType,
		SizeBytes:        int64(len(image)),
		StorageKey:       storageKey,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create receipt", "error", err)
		return nil, err
	}

	// Start the Temporal pipeline for this receipt
	if wfErr := s.startReceiptPipeline(ctx, result); wfErr != nil {
		// We intentionally do not fail the overall request, but we emit structured context
		rlog.Error("workflow start issue", "receipt_id", result.ID, "workflow_id", fmt.Sprintf("receipt-%s", result.IdempotencyKey), "error", wfErr)
	}

	s.viewCache.SetFull(viewcache.KeyFromID(result.ID), *result)

	return &ReceiptResponse{
		Receipt: *result,
	}, nil
}

// Validate implements validation for UploadReceiptRequest using go-playground/validator
func (r *UploadReceiptRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !strings.HasPrefix(r.ContentType, "image/") && r.ContentType != "application/pdf" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "content_type must be an image or PDF"}
	}

	return nil
}

func (s *Service) storeImage(ctx context.Context, key, contentType string, image []byte) error {
	writer := receiptImages.Upload(ctx, key, objects.WithUploadAttrs(objects.UploadAttrs{
		ContentType: contentType,
	}))
	if _, err := writer.Write(image); err != nil {
		writer.Abort(err)
		return err
	}
	return writer.Close()
}

// startReceiptPipeline starts the Temporal workflow managing the receipt's
// processing lifecycle.
func (s *Service) startReceiptPipeline(ctx context.Context, receipt *model.Receipt) error {
	workflowID := fmt.Sprintf("receipt-%s", receipt.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.ReceiptPipelineParams{
		ReceiptID:          receipt.ID,
		ProcessingDeadline: time.Duration(cfg.ProcessingDeadlineMinutes()) * time.Minute,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ReceiptPipeline, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "receipt_id", receipt.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
