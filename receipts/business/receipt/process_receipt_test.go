package receipt

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/receipts/mocks/domain/state_machine"
	"encore.app/receipts/mocks/extraction/extraction_client"
	"encore.app/receipts/mocks/repository/receipt_repo"
	"encore.app/receipts/mocks/storage/image_store"
	"encore.app/receipts/model"
	"encore.app/receipts/repository/receipts"
)

func TestStartProcessing(t *testing.T) {
	testCases := []struct {
		name          string
		mockError     error
		expectedError string
	}{
		{
			name: "happy_case",
		},
		{
			name:          "transition_fails",
			mockError:     assert.AnError,
			expectedError: assert.AnError.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			business := &business{stateMachine: mockStateMachine}

			mockStateMachine.EXPECT().
				TransitionToProcessing(gomock.Any(), int64(1)).
				Return(receipts.Receipt{ID: 1, Status: "processing"}, tc.mockError)

			err := business.StartProcessing(context.Background(), 1)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExtractReceipt(t *testing.T) {
	storedRow := receipts.Receipt{
		ID:          1,
		Status:      "processing",
		ContentType: "image/jpeg",
		StorageKey:  "receipts/abc/lunch.jpg",
	}
	imageBytes := []byte("stored image")
	extractedData := &model.ExtractedData{
		Merchant:   "Corner Bistro",
		TotalCents: 4250,
		Currency:   "USD",
		Confidence: 0.97,
	}

	testCases := []struct {
		name           string
		getError       error
		downloadError  error
		extractError   error
		attachError    error
		expectDownload bool
		expectExtract  bool
		expectAttach   bool
		expectedError  string
	}{
		{
			name:           "happy_case",
			expectDownload: true,
			expectExtract:  true,
			expectAttach:   true,
		},
		{
			name:          "receipt_not_found",
			getError:      pgx.ErrNoRows,
			expectedError: "receipt not found",
		},
		{
			name:           "stored_image_unreadable",
			downloadError:  assert.AnError,
			expectDownload: true,
			expectedError:  "failed to read stored receipt image",
		},
		{
			name:           "extraction_service_down",
			extractError:   assert.AnError,
			expectDownload: true,
			expectExtract:  true,
			expectedError:  "extraction service failed",
		},
		{
			name:           "attach_transition_fails",
			attachError:    assert.AnError,
			expectDownload: true,
			expectExtract:  true,
			expectAttach:   true,
			expectedError:  assert.AnError.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := receipt_repo.NewMockQuerier(ctrl)
			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			mockExtractor := extraction_client.NewMockClient(ctrl)
			mockImages := image_store.NewMockImageStore(ctrl)
			business := &business{
				receiptRepo:  mockRepo,
				stateMachine: mockStateMachine,
				extractor:    mockExtractor,
				images:       mockImages,
			}

			mockRepo.EXPECT().
				GetReceipt(gomock.Any(), int64(1)).
				Return(storedRow, tc.getError)

			if tc.expectDownload {
				mockImages.EXPECT().
					Download(gomock.Any(), storedRow.StorageKey).
					Return(imageBytes, tc.downloadError)
			}

			if tc.expectExtract {
				mockExtractor.EXPECT().
					Extract(gomock.Any(), imageBytes, storedRow.ContentType).
					Return(extractedData, tc.extractError)
			}

			if tc.expectAttach {
				mockStateMachine.EXPECT().
					AttachExtraction(gomock.Any(), int64(1), extractedData).
					Return(receipts.Receipt{ID: 1, Status: "processed"}, tc.attachError)
			}

			err := business.ExtractReceipt(context.Background(), 1)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditReceipt(t *testing.T) {
	extractedData := &model.ExtractedData{
		Merchant:   "Corner Bistro",
		TotalCents: 4250,
		Currency:   "USD",
		Confidence: 0.97,
	}
	payload, err := json.Marshal(extractedData)
	require.NoError(t, err)

	processedRow := receipts.Receipt{
		ID:            1,
		Status:        "processed",
		ExtractedData: payload,
	}
	decision := &model.AuditDecision{Decision: model.AuditDecisionApprove, Automatic: true}

	testCases := []struct {
		name          string
		storedRow     receipts.Receipt
		auditError    error
		applyError    error
		expectAudit   bool
		expectApply   bool
		expectedError string
	}{
		{
			name:        "happy_case",
			storedRow:   processedRow,
			expectAudit: true,
			expectApply: true,
		},
		{
			name:          "no_extracted_data",
			storedRow:     receipts.Receipt{ID: 1, Status: "processing"},
			expectedError: "receipt has no extracted data to audit",
		},
		{
			name:          "audit_service_down",
			storedRow:     processedRow,
			auditError:    assert.AnError,
			expectAudit:   true,
			expectedError: "audit service failed",
		},
		{
			name:          "apply_transition_fails",
			storedRow:     processedRow,
			applyError:    assert.AnError,
			expectAudit:   true,
			expectApply:   true,
			expectedError: assert.AnError.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := receipt_repo.NewMockQuerier(ctrl)
			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			mockExtractor := extraction_client.NewMockClient(ctrl)
			business := &business{
				receiptRepo:  mockRepo,
				stateMachine: mockStateMachine,
				extractor:    mockExtractor,
			}

			mockRepo.EXPECT().
				GetReceipt(gomock.Any(), int64(1)).
				Return(tc.storedRow, nil)

			if tc.expectAudit {
				mockExtractor.EXPECT().
					Audit(gomock.Any(), gomock.Any()).
					Return(decision, tc.auditError)
			}

			if tc.expectApply {
				mockStateMachine.EXPECT().
					ApplyAuditDecision(gomock.Any(), int64(1), decision).
					Return(receipts.Receipt{ID: 1, Status: "completed"}, tc.applyError)
			}

			err := business.AuditReceipt(context.Background(), 1)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFailReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStateMachine := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockStateMachine}

	mockStateMachine.EXPECT().
		TransitionToFailed(gomock.Any(), int64(1), "extraction_failed").
		Return(receipts.Receipt{ID: 1, Status: "failed"}, nil)

	assert.NoError(t, business.FailReceipt(context.Background(), 1, "extraction_failed"))

	mockStateMachine.EXPECT().
		TransitionToFailed(gomock.Any(), int64(2), "processing_timeout").
		Return(receipts.Receipt{}, assert.AnError)

	assert.Error(t, business.FailReceipt(context.Background(), 2, "processing_timeout"))
}

func TestCancelReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStateMachine := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockStateMachine}

	mockStateMachine.EXPECT().
		TransitionToCanceled(gomock.Any(), int64(1), "user_request").
		Return(receipts.Receipt{ID: 1, Status: "canceled"}, nil)

	assert.NoError(t, business.CancelReceipt(context.Background(), 1, "user_request"))

	mockStateMachine.EXPECT().
		TransitionToCanceled(gomock.Any(), int64(2), "user_request").
		Return(receipts.Receipt{}, assert.AnError)

	assert.Error(t, business.CancelReceipt(context.Background(), 2, "user_request"))
}
