// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"bookingtour_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Booking Domain Events
// =============================================================================

// SessionCreated is published when a booking session is seeded from the catalog.
type SessionCreated struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
	Kind      string    `json:"kind"`
	ItemID    int64     `json:"itemId"`
}

func (e SessionCreated) EventName() string { return "booking.session.created" }

// DiscountApplied is published when a discount code is validated and attached.
type DiscountApplied struct {
	BaseEvent
	SessionID      uuid.UUID `json:"sessionId"`
	Code           string    `json:"code"`
	DiscountAmount int64     `json:"discountAmount"`
	FinalAmount    int64     `json:"finalAmount"`
}

func (e DiscountApplied) EventName() string { return "booking.discount.applied" }

// DiscountRejected is published when the discount service declines a code.
type DiscountRejected struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
	Code      string    `json:"code"`
	Reason    string    `json:"reason"`
}

func (e DiscountRejected) EventName() string { return "booking.discount.rejected" }

// BookingSubmitted is published after the external booking service accepts a draft.
type BookingSubmitted struct {
	BaseEvent
	SessionID   uuid.UUID `json:"sessionId"`
	DraftID     uuid.UUID `json:"draftId"`
	BookingID   string    `json:"bookingId"`
	Kind        string    `json:"kind"`
	FinalAmount int64     `json:"finalAmount"`
	PaymentType string    `json:"paymentType"`
}

func (e BookingSubmitted) EventName() string { return "booking.submitted" }
