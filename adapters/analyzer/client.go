package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"claimguard/domain/analysis"
	"claimguard/domain/claim"
	"claimguard/domain/core"
	"claimguard/internal/errors"
)

const analyzePath = "/analyze_claim"

// Client is the HTTP adapter for the remote analysis backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client with a bounded request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze posts the claim payload and decodes the structured verdict.
// Any failure (network, non-2xx, malformed body) comes back as a single
// wrapped error; the caller decides how to degrade the display.
func (c *Client) Analyze(ctx context.Context, req claim.AnalyzeRequest) (*analysis.Result, error) {
	body, err := json.Marshal(encodeRequest(req))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode analyze request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build analyze request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.WithCode(errors.CodeBackendError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.CodeBackendError,
			fmt.Sprintf("analysis backend returned status %d", resp.StatusCode))
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, errors.WithCode(errors.CodeBackendError,
			fmt.Errorf("%w: %v", core.ErrMalformedResponse, err))
	}

	result := decodeResponse(wire)
	result.ID = core.NewAnalysisID()
	return result, nil
}

// Healthy probes the backend health endpoint for the connectivity indicator
func (c *Client) Healthy(ctx context.Context) bool {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
