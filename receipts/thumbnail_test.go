package receipts

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/receipts/mocks/signing/signing_client"
	"encore.app/receipts/signing"
	"encore.app/receipts/viewcache"
)

func newThumbnailService(t *testing.T) (*Service, *signing_client.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSigner := signing_client.NewMockClient(ctrl)
	service := &Service{
		viewCache:  viewcache.NewStore(),
		thumbnails: viewcache.NewBackoffGuard(),
		signer:     mockSigner,
		assets:     &http.Client{},
	}
	return service, mockSigner
}

func thumbnailRequest(id string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/v1/receipts/"+id+"/thumbnail", nil)
}

func TestThumbnail_ServesUpstreamImage(t *testing.T) {
	imageBytes := []byte("jpeg bytes")
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(imageBytes)
	}))
	defer upstream.Close()

	service, mockSigner := newThumbnailService(t)
	mockSigner.EXPECT().SignedURL(gomock.Any(), "42").Return(upstream.URL, nil).Times(1)

	rec := httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("42"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get(thumbnailStatusHeader))
	assert.Equal(t, imageBytes, rec.Body.Bytes())

	// The resolved URL is cached for immediate reuse.
	preview, ok := service.viewCache.GetPreview("42")
	require.True(t, ok)
	assert.Equal(t, upstream.URL, preview.Src)
}

func TestThumbnail_ReusesCachedPreview(t *testing.T) {
	service, _ := newThumbnailService(t)
	service.viewCache.SetPreview("42", "https://assets.example.com/signed/42")

	// No SignedURL expectation: the cached preview must short-circuit.
	rec := httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("42"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://assets.example.com/signed/42", rec.Header().Get("Location"))
}

func TestThumbnail_LeadingZerosShareCachedPreview(t *testing.T) {
	service, _ := newThumbnailService(t)
	service.viewCache.SetPreview("42", "https://assets.example.com/signed/42")

	rec := httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("042"))

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestThumbnail_PlaceholderReasons(t *testing.T) {
	badUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer badUpstream.Close()

	testCases := []struct {
		name           string
		receiptID      string
		signedURL      string
		signError      error
		expectSignCall bool
		expectedReason string
	}{
		{
			name:           "signing_auth_rejected",
			receiptID:      "10",
			signError:      &signing.UpstreamError{StatusCode: http.StatusForbidden},
			expectSignCall: true,
			expectedReason: "auth-fail",
		},
		{
			name:           "signing_upstream_failure",
			receiptID:      "11",
			signError:      &signing.UpstreamError{StatusCode: http.StatusInternalServerError},
			expectSignCall: true,
			expectedReason: "sign-upstream",
		},
		{
			name:           "signing_response_without_url",
			receiptID:      "12",
			signError:      signing.ErrMissingURL,
			expectSignCall: true,
			expectedReason: "no-url",
		},
		{
			name:           "signing_transport_error",
			receiptID:      "13",
			signError:      errors.New("connection refused"),
			expectSignCall: true,
			expectedReason: "sign-error",
		},
		{
			name:           "asset_fetch_error",
			receiptID:      "14",
			signedURL:      "http://127.0.0.1:1/unreachable",
			expectSignCall: true,
			expectedReason: "fetch-error",
		},
		{
			name:           "asset_not_an_image",
			receiptID:      "15",
			signedURL:      badUpstream.URL,
			expectSignCall: true,
			expectedReason: "bad-upstream",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockSigner := newThumbnailService(t)

			if tc.expectSignCall {
				mockSigner.EXPECT().
					SignedURL(gomock.Any(), tc.receiptID).
					Return(tc.signedURL, tc.signError).
					Times(1)
			}

			rec := httptest.NewRecorder()
			service.Thumbnail(rec, thumbnailRequest(tc.receiptID))

			// Placeholders always render as a 200 image with the reason header.
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedReason, rec.Header().Get(thumbnailStatusHeader))
			assert.Equal(t, placeholderPNG, rec.Body.Bytes())
		})
	}
}

// Only authorization rejections arm the cooldown; after one, subsequent
// requests are suppressed without touching the signing endpoint.
func TestThumbnail_AuthFailureArmsCooldown(t *testing.T) {
	service, mockSigner := newThumbnailService(t)
	mockSigner.EXPECT().
		SignedURL(gomock.Any(), "20").
		Return("", &signing.UpstreamError{StatusCode: http.StatusUnauthorized}).
		Times(1)

	rec := httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("20"))
	assert.Equal(t, "auth-fail", rec.Header().Get(thumbnailStatusHeader))

	rec = httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("20"))
	assert.Equal(t, "suppressed", rec.Header().Get(thumbnailStatusHeader))

	// Another receipt is unaffected by the cooldown.
	mockSigner.EXPECT().
		SignedURL(gomock.Any(), "21").
		Return("", signing.ErrMissingURL).
		Times(1)

	rec = httptest.NewRecorder()
	service.Thumbnail(rec, thumbnailRequest("21"))
	assert.Equal(t, "no-url", rec.Header().Get(thumbnailStatusHeader))
}

func TestThumbnail_TransientFailureDoesNotArmCooldown(t *testing.T) {
	service, mockSigner := newThumbnailService(t)
	mockSigner.EXPECT().
		SignedURL(gomock.Any(), "30").
		Return("", &signing.UpstreamError{StatusCode: http.StatusBadGateway}).
		Times(2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		service.Thumbnail(rec, thumbnailRequest("30"))
		assert.Equal(t, "sign-upstream", rec.Header().Get(thumbnailStatusHeader))
	}
}

func TestThumbnail_MalformedPath(t *testing.T) {
	service, _ := newThumbnailService(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/receipts//thumbnail", nil)
	service.Thumbnail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-url", rec.Header().Get(thumbnailStatusHeader))
}
