package adapters

import (
	"context"

	"bookingtour_backend/internal/booking/domain"
	bookingservice "bookingtour_backend/internal/booking/service"
	bookingclient "bookingtour_backend/internal/bookingsvc/client"
)

// DraftSubmitterAdapter adapts the booking service client to the engine's
// DraftSubmitter port.
type DraftSubmitterAdapter struct {
	client *bookingclient.Client
}

// NewDraftSubmitter creates the adapter.
func NewDraftSubmitter(client *bookingclient.Client) *DraftSubmitterAdapter {
	return &DraftSubmitterAdapter{client: client}
}

// Submit hands the draft to the external Booking Service.
func (a *DraftSubmitterAdapter) Submit(ctx context.Context, draft *domain.BookingDraft) (*bookingservice.SubmitResult, error) {
	resp, err := a.client.Submit(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &bookingservice.SubmitResult{
		Success:   resp.Success,
		BookingID: resp.BookingID,
		Message:   resp.Message,
	}, nil
}

// Compile-time check.
var _ bookingservice.DraftSubmitter = (*DraftSubmitterAdapter)(nil)
