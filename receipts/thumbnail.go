package receipts

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"encore.dev/rlog"

	"encore.app/receipts/signing"
	"encore.app/receipts/viewcache"
)

// thumbnailStatusHeader tells the dashboard why it got a placeholder
// instead of the real thumbnail.
const thumbnailStatusHeader = "X-Thumbnail-Status"

// placeholderPNG is a 1x1 transparent PNG served whenever the real
// thumbnail cannot be produced; the dashboard always gets an image back.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

//encore:api public raw path=/v1/receipts/:id/thumbnail method=GET
func (s *Service) Thumbnail(w http.ResponseWriter, req *http.Request) {
	id := thumbnailReceiptID(req.URL.Path)
	if id == "" {
		servePlaceholder(w, "no-url")
		return
	}
	key := viewcache.CanonicalKey(id)

	// A recently resolved signed URL can be reused directly. Signed URLs
	// outlive this window, so the redirect target is still valid.
	if preview, ok := s.viewCache.GetPreview(key); ok && time.Since(preview.CapturedAt) < 5*time.Minute {
		http.Redirect(w, req, preview.Src, http.StatusFound)
		return
	}

	if !s.thumbnails.Proceed(key) {
		servePlaceholder(w, "suppressed")
		return
	}

	signedURL, err := s.signer.SignedURL(req.Context(), key)
	if err != nil {
		servePlaceholder(w, s.classifySigningFailure(key, err))
		return
	}

	upstream, err := s.assets.Get(signedURL)
	if err != nil {
		rlog.Warn("thumbnail asset fetch failed", "receipt_id", key, "error", err)
		servePlaceholder(w, "fetch-error")
		return
	}
	defer upstream.Body.Close()

	if upstream.StatusCode != http.StatusOK || !strings.HasPrefix(upstream.Header.Get("Content-Type"), "image/") {
		rlog.Warn("thumbnail asset unusable", "receipt_id", key, "status", upstream.StatusCode, "content_type", upstream.Header.Get("Content-Type"))
		servePlaceholder(w, "bad-upstream")
		return
	}

	s.viewCache.SetPreview(key, signedURL)

	w.Header().Set("Content-Type", upstream.Header.Get("Content-Type"))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, upstream.Body); err != nil {
		rlog.Warn("thumbnail stream interrupted", "receipt_id", key, "error", err)
	}
}

// classifySigningFailure maps a signing error to a placeholder reason. Only
// authorization rejections arm the cooldown; everything else is treated as
// transient and retried on the next request.
func (s *Service) classifySigningFailure(key string, err error) string {
	var upstreamErr *signing.UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && upstreamErr.AuthFailure():
		rlog.Warn("signing endpoint rejected credentials, cooling down", "receipt_id", key, "status", upstreamErr.StatusCode)
		s.thumbnails.Arm(key)
		return "auth-fail"
	case errors.As(err, &upstreamErr):
		rlog.Warn("signing endpoint failed", "receipt_id", key, "status", upstreamErr.StatusCode)
		return "sign-upstream"
	case errors.Is(err, signing.ErrMissingURL):
		rlog.Warn("signing endpoint returned no url", "receipt_id", key)
		return "no-url"
	default:
		rlog.Warn("signing request failed", "receipt_id", key, "error", err)
		return "sign-error"
	}
}

func servePlaceholder(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(thumbnailStatusHeader, reason)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(placeholderPNG)
}

// thumbnailReceiptID pulls the :id segment out of /v1/receipts/:id/thumbnail.
func thumbnailReceiptID(path string) string {
	trimmed := strings.TrimPrefix(path, "/v1/receipts/")
	id, ok := strings.CutSuffix(trimmed, "/thumbnail")
	if !ok || id == "" {
		return ""
	}
	return id
}
