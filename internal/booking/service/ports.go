package service

import (
	"context"

	"bookingtour_backend/internal/booking/domain"
)

// OfferSelection identifies what the customer picked in the catalog:
// a schedule for tours and combos, an ordered set of room-inventory runs
// for accommodations.
type OfferSelection struct {
	Kind       domain.OfferKind
	ItemID     int64
	ScheduleID int64
	RoomRunIDs []int64
}

// OfferProvider fetches and normalizes catalog data into a bookable offer.
// Implemented by an adapter over the catalog client.
type OfferProvider interface {
	OfferForBooking(ctx context.Context, sel OfferSelection) (*domain.BookableOffer, error)
}

// DiscountNegotiator validates a discount code against a subtotal.
// Implemented by an adapter over the discount service client.
type DiscountNegotiator interface {
	Apply(ctx context.Context, code string, subtotal int64, userID string) (*domain.DiscountApplication, error)
}

// SubmitResult is the booking service's answer to a draft submission.
// Failure messages are opaque strings surfaced to the user as-is.
type SubmitResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// DraftSubmitter hands a finished draft to the external booking service.
type DraftSubmitter interface {
	Submit(ctx context.Context, draft *domain.BookingDraft) (*SubmitResult, error)
}
