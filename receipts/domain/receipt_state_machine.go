// Package domain owns receipt state transitions. Transaction boundaries and
// row locks live here, not in the business layer above or the queriers below.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

// StateMachine is the transition surface the business layer depends on.
type StateMachine interface {
	TransitionToProcessing(ctx context.Context, id int64) (receipts.Receipt, error)
	AttachExtraction(ctx context.Context, id int64, data *model.ExtractedData) (receipts.Receipt, error)
	TransitionToFailed(ctx context.Context, id int64, reason string) (receipts.Receipt, error)
	TransitionToCanceled(ctx context.Context, id int64, reason string) (receipts.Receipt, error)
	ApplyAuditDecision(ctx context.Context, id int64, decision *model.AuditDecision) (receipts.Receipt, error)
}

// ReceiptStateMachine performs receipt status transitions under row-level
// locking. Valid transitions:
//
//	pending    -> processing | failed | canceled
//	processing -> processed  | failed | canceled
//	processed  -> completed  | rejected
//
// completed, rejected, failed and canceled are terminal.
type ReceiptStateMachine struct {
	db          *pgxpool.Pool
	receiptRepo receipts.Querier
}

var _ StateMachine = (*ReceiptStateMachine)(nil)

// NewReceiptStateMachine creates a state machine over the given pool and querier.
func NewReceiptStateMachine(db *pgxpool.Pool, receiptRepo receipts.Querier) *ReceiptStateMachine {
	return &ReceiptStateMachine{
		db:          db,
		receiptRepo: receiptRepo,
	}
}

// ExecuteWithLock runs fn with the receipt row locked (SELECT ... FOR UPDATE)
// inside a transaction. fn receives the locked row and a transaction-scoped
// querier; the transaction commits only if fn returns nil.
func (sm *ReceiptStateMachine) ExecuteWithLock(ctx context.Context, id int64, fn func(current receipts.Receipt, tx receipts.Querier) error) error {
	dbTx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer dbTx.Rollback(ctx)

	txQueries := sm.receiptRepo.WithTx(dbTx)

	current, err := txQueries.GetReceiptForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "receipt not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock receipt for state transition"}
	}

	if err := fn(current, txQueries); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}
	return nil
}

// TransitionToProcessing moves a pending receipt into processing.
func (sm *ReceiptStateMachine) TransitionToProcessing(ctx context.Context, id int64) (receipts.Receipt, error) {
	var updated receipts.Receipt
	err := sm.ExecuteWithLock(ctx, id, func(current receipts.Receipt, tx receipts.Querier) error {
		if current.Status != string(model.ReceiptStatusPending) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "receipt must be pending to start processing",
			}
		}
		var err error
		updated, err = tx.UpdateReceiptStatus(ctx, receipts.UpdateReceiptStatusParams{
			ID:     id,
			Status: string(model.ReceiptStatusProcessing),
		})
		return err
	})
	return updated, err
}

// AttachExtraction stores extraction output and moves the receipt from
// processing to processed.
func (sm *ReceiptStateMachine) AttachExtraction(ctx context.Context, id int64, data *model.ExtractedData) (receipts.Receipt, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return receipts.Receipt{}, &errs.Error{Code: errs.Internal, Message: "failed to marshal extracted data"}
	}

	var updated receipts.Receipt
	err = sm.ExecuteWithLock(ctx, id, func(current receipts.Receipt, tx receipts.Querier) error {
		if current.Status != string(model.ReceiptStatusProcessing) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "receipt must be processing to attach extraction results",
			}
		}
		var txErr error
		updated, txErr = tx.UpdateReceiptExtraction(ctx, receipts.UpdateReceiptExtractionParams{
			ID:            id,
			Status:        string(model.ReceiptStatusProcessed),
			ExtractedData: payload,
			ProcessedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
		})
		return txErr
	})
	return updated, err
}

// TransitionToFailed marks a non-terminal receipt as failed with a reason.
func (sm *ReceiptStateMachine) TransitionToFailed(ctx context.Context, id int64, reason string) (receipts.Receipt, error) {
	var updated receipts.Receipt
	err := sm.ExecuteWithLock(ctx, id, func(current receipts.Receipt, tx receipts.Querier) error {
		if model.ReceiptStatus(current.Status).Terminal() {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "receipt is already in a terminal status",
			}
		}
		var txErr error
		updated, txErr = tx.UpdateReceiptFailure(ctx, receipts.UpdateReceiptFailureParams{
			ID:            id,
			Status:        string(model.ReceiptStatusFailed),
			FailureReason: pgtype.Text{String: reason, Valid: true},
		})
		return txErr
	})
	return updated, err
}

// TransitionToCanceled cancels a receipt that has not finished processing.
func (sm *ReceiptStateMachine) TransitionToCanceled(ctx context.Context, id int64, reason string) (receipts.Receipt, error) {
	var updated receipts.Receipt
	err := sm.ExecuteWithLock(ctx, id, func(current receipts.Receipt, tx receipts.Querier) error {
		switch current.Status {
		case string(model.ReceiptStatusCanceled):
			// Idempotent: cancel of a canceled receipt is a no-op.
			updated = current
			return nil
		case string(model.ReceiptStatusPending), string(model.ReceiptStatusProcessing):
			var txErr error
			updated, txErr = tx.UpdateReceiptFailure(ctx, receipts.UpdateReceiptFailureParams{
				ID:            id,
				Status:        string(model.ReceiptStatusCanceled),
				FailureReason: pgtype.Text{String: reason, Valid: true},
			})
			return txErr
		default:
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "receipt can no longer be canceled",
			}
		}
	})
	return updated, err
}

// ApplyAuditDecision records an audit decision on a processed receipt and
// moves it to completed or rejected.
func (sm *ReceiptStateMachine) ApplyAuditDecision(ctx context.Context, id int64, decision *model.AuditDecision) (receipts.Receipt, error) {
	var target model.ReceiptStatus
	switch decision.Decision {
	case model.AuditDecisionApprove:
		target = model.ReceiptStatusCompleted
	case model.AuditDecisionReject:
		target = model.ReceiptStatusRejected
	default:
		return receipts.Receipt{}, &errs.Error{Code: errs.InvalidArgument, Message: "unknown audit decision"}
	}

	payload, err := json.Marshal(decision)
	if err != nil {
		return receipts.Receipt{}, &errs.Error{Code: errs.Internal, Message: "failed to marshal audit decision"}
	}

	var updated receipts.Receipt
	err = sm.ExecuteWithLock(ctx, id, func(current receipts.Receipt, tx receipts.Querier) error {
		if current.Status != string(model.ReceiptStatusProcessed) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "receipt must be processed before an audit decision",
			}
		}
		var txErr error
		updated, txErr = tx.UpdateReceiptAudit(ctx, receipts.UpdateReceiptAuditParams{
			ID:            id,
			Status:        string(target),
			AuditDecision: payload,
		})
		return txErr
	})
	return updated, err
}
