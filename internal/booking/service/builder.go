package service

import (
	"fmt"
	"strings"
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/platform/phone"
	"bookingtour_backend/platform/validator"

	"github.com/google/uuid"
)

// DraftBuilder assembles and validates the final booking draft. It is the
// last gate before the draft is handed to the external booking service and
// performs no network I/O itself.
type DraftBuilder struct {
	val *validator.Validator
}

// NewDraftBuilder creates a draft builder.
func NewDraftBuilder(val *validator.Validator) *DraftBuilder {
	return &DraftBuilder{val: val}
}

// Build validates all inputs and assembles an immutable BookingDraft.
// On failure it returns a *domain.ValidationFailure listing every failing
// field, not just the first one.
func (b *DraftBuilder) Build(
	contact domain.ContactInfo,
	offer *domain.BookableOffer,
	roster *domain.Roster,
	breakdown domain.PriceBreakdown,
	discount *domain.DiscountApplication,
	paymentType domain.PaymentType,
) (*domain.BookingDraft, error) {
	failure := &domain.ValidationFailure{}

	if strings.TrimSpace(contact.FullName) == "" {
		failure.Add("contact.fullName", "contact name is required")
	}
	if err := b.val.Var(contact.Email, "required,email"); err != nil {
		failure.Add("contact.email", "a valid email address is required")
	}
	if !phone.IsVietnameseMobile(contact.Phone) {
		failure.Add("contact.phone", "a Vietnamese mobile number is required")
	}

	for i, p := range roster.Participants() {
		if strings.TrimSpace(p.FullName) == "" {
			failure.Add(fmt.Sprintf("participants[%d].fullName", i), "full name is required")
		}
		if p.DateOfBirth == nil {
			failure.Add(fmt.Sprintf("participants[%d].dateOfBirth", i), "date of birth is required")
		}
	}

	if offer.IsAccommodation() {
		if len(offer.RoomRunIDs) == 0 {
			failure.Add("offer.roomRunIds", "at least one room inventory run is required")
		}
	} else if offer.ScheduleID == 0 {
		failure.Add("offer.scheduleId", "a schedule is required")
	}

	if !paymentType.Valid() {
		failure.Add("paymentType", "payment type must be one of vnpay, momo, cash")
	}

	if !failure.Empty() {
		return nil, failure
	}

	finalAmount := breakdown.Subtotal
	if discount != nil && discount.IsValid {
		finalAmount = discount.FinalAmount
	}

	contact.Phone = phone.NormalizeE164(contact.Phone)

	return &domain.BookingDraft{
		ID:           uuid.New(),
		Contact:      contact,
		Offer:        *offer,
		Participants: roster.Participants(),
		Breakdown:    breakdown,
		Discount:     discount,
		PaymentType:  paymentType,
		FinalAmount:  finalAmount,
		CreatedAt:    time.Now(),
	}, nil
}
