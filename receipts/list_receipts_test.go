package receipts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/receipts/mocks/business/receipt_business"
	"encore.app/receipts/model"
	"encore.app/receipts/viewcache"
)

func TestListReceipts(t *testing.T) {
	now := time.Now()

	sample := []*model.Receipt{
		{ID: 1, Status: model.ReceiptStatusCompleted, OriginalFilename: "a.jpg", CreatedAt: now},
		{ID: 2, Status: model.ReceiptStatusProcessing, OriginalFilename: "b.jpg", CreatedAt: now},
		{ID: 3, Status: model.ReceiptStatusPending, OriginalFilename: "c.jpg", CreatedAt: now},
	}

	testCases := []struct {
		name          string
		request       *ListReceiptsRequest
		expectedLimit int32
		mockReturn    []*model.Receipt
		mockCount     int64
		mockError     error
		expectedError string
	}{
		{
			name:          "default_limit_applied",
			request:       &ListReceiptsRequest{},
			expectedLimit: 10,
			mockReturn:    sample,
			mockCount:     3,
		},
		{
			name:          "explicit_limit_and_offset",
			request:       &ListReceiptsRequest{Limit: 25, Offset: 50},
			expectedLimit: 25,
			mockReturn:    sample[:1],
			mockCount:     51,
		},
		{
			name:          "limit_clamped_to_maximum",
			request:       &ListReceiptsRequest{Limit: 500},
			expectedLimit: 100,
			mockReturn:    sample,
			mockCount:     3,
		},
		{
			name:          "negative_limit_uses_default",
			request:       &ListReceiptsRequest{Limit: -1},
			expectedLimit: 10,
			mockReturn:    nil,
			mockCount:     0,
		},
		{
			name:          "business_error",
			request:       &ListReceiptsRequest{Limit: 10},
			expectedLimit: 10,
			mockError:     &errs.Error{Code: errs.Internal, Message: "failed to list receipts"},
			expectedError: "failed to list receipts",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := receipt_business.NewMockBusiness(ctrl)
			service := &Service{business: mockBusiness, viewCache: viewcache.NewStore()}

			mockBusiness.EXPECT().
				ListReceipts(gomock.Any(), tc.expectedLimit, int32(tc.request.Offset)).
				Return(tc.mockReturn, tc.mockCount, tc.mockError).
				Times(1)

			response, err := service.ListReceipts(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, response)
			assert.Equal(t, len(tc.mockReturn), len(response.Receipts))
			assert.Equal(t, tc.mockCount, response.TotalCount)
			assert.Equal(t, int(tc.expectedLimit), response.Limit)

			for i, expected := range tc.mockReturn {
				assert.Equal(t, expected.ID, response.Receipts[i].ID)
				assert.Equal(t, expected.Status, response.Receipts[i].Status)
			}
		})
	}
}

// Listing warms the view cache with partial rows so a following detail open
// can render immediately, but those rows must never shadow a full entry.
func TestListReceipts_PrimesViewCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := receipt_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness, viewCache: viewcache.NewStore()}

	full := model.Receipt{ID: 2, Status: model.ReceiptStatusProcessed, OriginalFilename: "detail.jpg"}
	service.viewCache.SetFull(viewcache.KeyFromID(2), full)

	rows := []*model.Receipt{
		{ID: 1, Status: model.ReceiptStatusPending, OriginalFilename: "row.jpg"},
		{ID: 2, Status: model.ReceiptStatusProcessed, OriginalFilename: "row.jpg"},
	}
	mockBusiness.EXPECT().
		ListReceipts(gomock.Any(), int32(10), int32(0)).
		Return(rows, int64(2), nil).
		Times(1)

	_, err := service.ListReceipts(context.Background(), &ListReceiptsRequest{})
	require.NoError(t, err)

	entry1, ok := service.viewCache.Get(viewcache.KeyFromID(1))
	require.True(t, ok)
	assert.True(t, entry1.Partial)

	entry2, ok := service.viewCache.Get(viewcache.KeyFromID(2))
	require.True(t, ok)
	assert.False(t, entry2.Partial, "full entry must survive list priming")
	assert.Equal(t, "detail.jpg", entry2.Receipt.OriginalFilename)
}
