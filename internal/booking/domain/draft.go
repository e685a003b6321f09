package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentType is the payment method chosen at submission.
type PaymentType string

const (
	PaymentVNPay PaymentType = "vnpay"
	PaymentMoMo  PaymentType = "momo"
	PaymentCash  PaymentType = "cash"
)

// Valid reports whether the payment type is supported.
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentVNPay, PaymentMoMo, PaymentCash:
		return true
	}
	return false
}

// ContactInfo is the booking contact entered in the first step of the flow.
type ContactInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BookingDraft is the assembled, validated submission payload. It is built
// once at submission time and never mutated; a failed submission rebuilds a
// fresh draft from current session state.
type BookingDraft struct {
	ID           uuid.UUID            `json:"id"`
	Contact      ContactInfo          `json:"contact"`
	Offer        BookableOffer        `json:"offer"`
	Participants []Participant        `json:"participants"`
	Breakdown    PriceBreakdown       `json:"breakdown"`
	Discount     *DiscountApplication `json:"discount,omitempty"`
	PaymentType  PaymentType          `json:"paymentType"`
	FinalAmount  int64                `json:"finalAmount"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// FieldError names one failing field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailure enumerates every field that blocks submission, so the
// UI can surface all problems at once instead of one per round trip.
type ValidationFailure struct {
	Fields []FieldError
}

// Add records one failing field.
func (v *ValidationFailure) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// Empty reports whether no field failed.
func (v *ValidationFailure) Empty() bool {
	return len(v.Fields) == 0
}

// Error implements the error interface.
func (v *ValidationFailure) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
