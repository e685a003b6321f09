// Package client provides the HTTP client for the external Discount Service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bookingtour_backend/internal/discount/transport"
	"bookingtour_backend/platform/apperr"
	"bookingtour_backend/platform/config"
	"bookingtour_backend/platform/logger"
)

const apiVersion = "v1"

// Client is the HTTP client for the Discount Service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a discount client.
func New(cfg config.DiscountConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetDiscountTimeout()},
		baseURL:    strings.TrimRight(cfg.GetDiscountBaseURL(), "/"),
		apiKey:     cfg.GetDiscountAPIKey(),
		log:        log,
	}
}

// Validate submits a code and subtotal for validation. Transport failures,
// timeouts, and 5xx responses surface as unavailable errors; the negotiator
// downgrades those to "no discount applied".
func (c *Client) Validate(ctx context.Context, req transport.ValidateRequest) (*transport.ValidateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/%s/discounts/validate", c.baseURL, apiVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.UpstreamError("discount", "Validate", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "discount service unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Success - continue to decode
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("discount upstream error", "status", resp.StatusCode)
		return nil, apperr.Unavailable(fmt.Sprintf("discount service error: status %d", resp.StatusCode))
	default:
		c.log.Error("discount unexpected status", "status", resp.StatusCode)
		return nil, apperr.Upstream(fmt.Sprintf("discount service returned status %d", resp.StatusCode))
	}

	var out transport.ValidateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		c.log.Error("discount decode failed", "error", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "discount service returned a malformed response", err)
	}
	return &out, nil
}
