// Package extraction is the contract with the hosted AI service that reads
// receipt images and audits the extracted data. The service itself is out of
// scope; this client only shapes its requests and responses.
package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"encore.app/receipts/model"
)

// Client extracts structured data from a receipt image and produces an
// automatic audit decision for it.
type Client interface {
	Extract(ctx context.Context, image []byte, contentType string) (*model.ExtractedData, error)
	Audit(ctx context.Context, data *model.ExtractedData) (*model.AuditDecision, error)
}

// HTTPClient is the production Client over the configured extraction service.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Extract(ctx context.Context, image []byte, contentType string) (*model.ExtractedData, error) {
	reqBody := struct {
		ContentType string `json:"content_type"`
		ImageBase64 string `json:"image_base64"`
	}{
		ContentType: contentType,
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	}

	var data model.ExtractedData
	if err := c.post(ctx, "/v1/extract", reqBody, &data); err != nil {
		return nil, fmt.Errorf("extraction: %w", err)
	}
	return &data, nil
}

func (c *HTTPClient) Audit(ctx context.Context, data *model.ExtractedData) (*model.AuditDecision, error) {
	var result struct {
		Decision string `json:"decision"`
		Notes    string `json:"notes"`
	}
	if err := c.post(ctx, "/v1/audit", data, &result); err != nil {
		return nil, fmt.Errorf("extraction: audit: %w", err)
	}

	return &model.AuditDecision{
		Decision:  result.Decision,
		Notes:     result.Notes,
		Automatic: true,
		DecidedAt: time.Now(),
	}, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
