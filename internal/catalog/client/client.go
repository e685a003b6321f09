// Package client provides the HTTP client for the Booking Catalog Service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookingtour_backend/internal/catalog/transport"
	"bookingtour_backend/platform/apperr"
	"bookingtour_backend/platform/config"
	"bookingtour_backend/platform/logger"
)

const apiVersion = "v1"

// Client is the HTTP client for the Booking Catalog Service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a catalog client.
func New(cfg config.CatalogConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetCatalogTimeout()},
		baseURL:    strings.TrimRight(cfg.GetCatalogBaseURL(), "/"),
		apiKey:     cfg.GetCatalogAPIKey(),
		log:        log,
	}
}

// TourOffer fetches the booking view of a tour departure.
func (c *Client) TourOffer(ctx context.Context, itemID, scheduleID int64) (*transport.TourOfferPayload, error) {
	reqURL := fmt.Sprintf("%s/api/%s/tours/%d/departures/%d/booking-offer", c.baseURL, apiVersion, itemID, scheduleID)
	var payload transport.TourOfferPayload
	if err := c.doRequest(ctx, reqURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ComboOffer fetches the booking view of a combo schedule.
func (c *Client) ComboOffer(ctx context.Context, itemID, scheduleID int64) (*transport.ComboOfferPayload, error) {
	reqURL := fmt.Sprintf("%s/api/%s/combos/%d/schedules/%d/booking-offer", c.baseURL, apiVersion, itemID, scheduleID)
	var payload transport.ComboOfferPayload
	if err := c.doRequest(ctx, reqURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AccommodationOffer fetches the booking view of a set of room-inventory runs.
func (c *Client) AccommodationOffer(ctx context.Context, itemID int64, roomRunIDs []int64) (*transport.AccommodationOfferPayload, error) {
	params := url.Values{}
	params.Set("roomRunIds", joinIDs(roomRunIDs))
	reqURL := fmt.Sprintf("%s/api/%s/accommodations/%d/booking-offer?%s", c.baseURL, apiVersion, itemID, params.Encode())
	var payload transport.AccommodationOfferPayload
	if err := c.doRequest(ctx, reqURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("catalog", "doRequest", err)
		return apperr.Wrap(apperr.KindUnavailable, "catalog service unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Success - continue to decode
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound("selected item or schedule no longer exists")
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("catalog upstream error", "status", resp.StatusCode, "url", reqURL)
		return apperr.Unavailable(fmt.Sprintf("catalog service error: status %d", resp.StatusCode))
	default:
		c.log.Error("catalog unexpected status", "status", resp.StatusCode, "url", reqURL)
		return apperr.Upstream(fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, 1<<20))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		c.log.Error("catalog decode failed", "error", err)
		return apperr.Wrap(apperr.KindUpstream, "catalog returned a malformed response", err)
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
