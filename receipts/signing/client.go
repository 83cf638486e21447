// Package signing talks to the external endpoint that mints time-limited,
// pre-authorized URLs for stored receipt images. The endpoint is an opaque
// collaborator: this client only classifies its failures so callers can
// decide which ones deserve a cooldown.
package signing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client returns a signed URL for a receipt's thumbnail image.
type Client interface {
	SignedURL(ctx context.Context, receiptID string) (string, error)
}

// ErrMissingURL is returned when the endpoint answers successfully but the
// payload carries no URL.
var ErrMissingURL = errors.New("signing: response contained no url")

// UpstreamError is a non-2xx answer from the signing endpoint.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("signing: upstream returned status %d", e.StatusCode)
}

// AuthFailure reports whether the failure is an authorization rejection
// (the only class that should arm the thumbnail backoff).
func (e *UpstreamError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// HTTPClient is the production Client over the configured signing endpoint.
type HTTPClient struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SignedURL(ctx context.Context, receiptID string) (string, error) {
	url := fmt.Sprintf("%s/v1/receipts/%s/signed-url", c.baseURL, receiptID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("signing: build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("signing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("signing: decode response: %w", err)
	}
	if payload.URL == "" {
		return "", ErrMissingURL
	}
	return payload.URL, nil
}
