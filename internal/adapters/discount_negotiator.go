package adapters

import (
	"context"

	"bookingtour_backend/internal/booking/domain"
	bookingservice "bookingtour_backend/internal/booking/service"
	discountservice "bookingtour_backend/internal/discount/service"
)

// DiscountNegotiatorAdapter adapts the discount negotiator to the booking
// engine's DiscountNegotiator port.
type DiscountNegotiatorAdapter struct {
	negotiator *discountservice.Negotiator
}

// NewDiscountNegotiator creates the adapter.
func NewDiscountNegotiator(negotiator *discountservice.Negotiator) *DiscountNegotiatorAdapter {
	return &DiscountNegotiatorAdapter{negotiator: negotiator}
}

// Apply validates a code against the subtotal.
func (a *DiscountNegotiatorAdapter) Apply(ctx context.Context, code string, subtotal int64, userID string) (*domain.DiscountApplication, error) {
	return a.negotiator.Apply(ctx, code, subtotal, userID)
}

// Compile-time check.
var _ bookingservice.DiscountNegotiator = (*DiscountNegotiatorAdapter)(nil)
