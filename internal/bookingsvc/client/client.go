// Package client provides the HTTP client for the external Booking Service,
// which persists accepted booking drafts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/platform/apperr"
	"bookingtour_backend/platform/config"
	"bookingtour_backend/platform/logger"
)

const apiVersion = "v1"

// SubmitResponse is the Booking Service's answer to a draft submission.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

// Client is the HTTP client for the Booking Service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a booking service client.
func New(cfg config.BookingAPIConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetBookingAPITimeout()},
		baseURL:    strings.TrimRight(cfg.GetBookingAPIBaseURL(), "/"),
		apiKey:     cfg.GetBookingAPIKey(),
		log:        log,
	}
}

// Submit posts a finished draft. A 200 with success=false is a business
// rejection (sold out, schedule closed) whose message is surfaced verbatim.
func (c *Client) Submit(ctx context.Context, draft *domain.BookingDraft) (*SubmitResponse, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/%s/bookings", c.baseURL, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("booking", "Submit", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "booking service unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Success - continue to decode
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("booking upstream error", "status", resp.StatusCode)
		return nil, apperr.Unavailable(fmt.Sprintf("booking service error: status %d", resp.StatusCode))
	default:
		c.log.Error("booking unexpected status", "status", resp.StatusCode)
		return nil, apperr.Upstream(fmt.Sprintf("booking service returned status %d", resp.StatusCode))
	}

	var out SubmitResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		c.log.Error("booking decode failed", "error", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "booking service returned a malformed response", err)
	}
	return &out, nil
}
