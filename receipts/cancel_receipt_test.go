package receipts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/receipts/mocks/business/receipt_business"
	"encore.app/receipts/model"
	"encore.app/receipts/viewcache"
	"encore.app/receipts/workflow"
)

func TestCancelReceipt(t *testing.T) {
	testCases := []struct {
		name           string
		receiptID      int
		currentStatus  model.ReceiptStatus
		workflowID     *string
		signalError    error
		expectSignal   bool
		expectDirect   bool
		directError    error
		expectedError  string
		canceledStatus model.ReceiptStatus
	}{
		{
			name:           "cancel_via_workflow_signal",
			receiptID:      1,
			currentStatus:  model.ReceiptStatusProcessing,
			workflowID:     stringPtr("receipt-key-1"),
			expectSignal:   true,
			canceledStatus: model.ReceiptStatusCanceled,
		},
		{
			name:           "signal_failure_falls_back_to_direct_cancel",
			receiptID:      2,
			currentStatus:  model.ReceiptStatusProcessing,
			workflowID:     stringPtr("receipt-key-2"),
			signalError:    errors.New("workflow execution already completed"),
			expectSignal:   true,
			expectDirect:   true,
			canceledStatus: model.ReceiptStatusCanceled,
		},
		{
			name:           "no_workflow_cancels_directly",
			receiptID:      3,
			currentStatus:  model.ReceiptStatusPending,
			expectDirect:   true,
			canceledStatus: model.ReceiptStatusCanceled,
		},
		{
			name:          "terminal_receipt_rejected",
			receiptID:     4,
			currentStatus: model.ReceiptStatusCompleted,
			expectedError: "receipt can no longer be canceled",
		},
		{
			name:          "direct_cancel_error_propagates",
			receiptID:     5,
			currentStatus: model.ReceiptStatusPending,
			expectDirect:  true,
			directError:   errors.New("database error"),
			expectedError: "database error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Override async to run synchronously for deterministic tests.
			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := receipt_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{
				business:  mockBusiness,
				temporal:  mockTemporal,
				viewCache: viewcache.NewStore(),
			}

			id := int64(tc.receiptID)
			current := &model.Receipt{ID: id, Status: tc.currentStatus, WorkflowID: tc.workflowID}
			service.viewCache.SetFull(viewcache.KeyFromID(id), *current)

			mockBusiness.EXPECT().
				GetReceipt(gomock.Any(), id).
				Return(current, nil).
				Times(1)

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow",
					mock.Anything, *tc.workflowID, "",
					workflow.CancelReceiptSignalName, mock.Anything,
				).Return(tc.signalError)
			}

			if tc.expectDirect {
				mockBusiness.EXPECT().
					CancelReceipt(gomock.Any(), id, "duplicate upload").
					Return(tc.directError).
					Times(1)

				// A direct cancel with a live workflow terminates it in the background.
				if tc.workflowID != nil && tc.directError == nil {
					mockTemporal.On("TerminateWorkflow",
						mock.Anything, *tc.workflowID, "", "canceled_directly",
					).Return(nil).Once()
				}
			}

			if tc.expectedError == "" {
				mockBusiness.EXPECT().
					GetReceipt(gomock.Any(), id).
					Return(&model.Receipt{ID: id, Status: tc.canceledStatus, WorkflowID: tc.workflowID}, nil).
					Times(1)
			}

			response, err := service.CancelReceipt(context.Background(), tc.receiptID, &CancelReceiptRequest{
				Reason:     "duplicate upload",
				CanceledBy: "reviewer",
			})

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, response)
			assert.Equal(t, tc.canceledStatus, response.Receipt.Status)

			// Cancellation drops the cached view so the next read refetches.
			_, ok := service.viewCache.Get(viewcache.KeyFromID(id))
			assert.False(t, ok)
		})
	}
}

func TestCancelReceipt_InvalidID(t *testing.T) {
	service := &Service{}

	for _, id := range []int{0, -1} {
		response, err := service.CancelReceipt(context.Background(), id, &CancelReceiptRequest{Reason: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid receipt ID")
		assert.Nil(t, response)
	}
}

func TestCancelReceiptRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CancelReceiptRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &CancelReceiptRequest{Reason: "duplicate upload", CanceledBy: "reviewer"},
		},
		{
			name:    "canceled_by_optional",
			request: &CancelReceiptRequest{Reason: "duplicate upload"},
		},
		{
			name:          "missing_reason",
			request:       &CancelReceiptRequest{},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
