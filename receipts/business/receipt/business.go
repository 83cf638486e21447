package receipt

import (
	"context"

	"encore.app/receipts/domain"
	"encore.app/receipts/extraction"
	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

type Business interface {
	CreateReceipt(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
	GetReceipt(ctx context.Context, id int64) (*model.Receipt, error)
	ListReceipts(ctx context.Context, limit, offset int32) ([]*model.Receipt, int64, error)

	StartProcessing(ctx context.Context, id int64) error
	ExtractReceipt(ctx context.Context, id int64) error
	AuditReceipt(ctx context.Context, id int64) error
	FailReceipt(ctx context.Context, id int64, reason string) error
	CancelReceipt(ctx context.Context, id int64, reason string) error

	RecordAuditDecision(ctx context.Context, id int64, decision *model.AuditDecision) (*model.Receipt, error)
}

// ImageStore reads stored receipt images back for processing.
type ImageStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// business handles receipt logic on top of the repository, the state
// machine and the external extraction service.
type business struct {
	receiptRepo  receipts.Querier
	stateMachine domain.StateMachine
	extractor    extraction.Client
	images       ImageStore
}

// NewReceiptBusiness creates the receipt business layer.
func NewReceiptBusiness(
	receiptRepo receipts.Querier,
	stateMachine domain.StateMachine,
	extractor extraction.Client,
	images ImageStore,
) Business {
	return &business{
		receiptRepo:  receiptRepo,
		stateMachine: stateMachine,
		extractor:    extractor,
		images:       images,
	}
}
