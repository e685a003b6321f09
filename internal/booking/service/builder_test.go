package service

import (
	"errors"
	"testing"
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/platform/validator"
)

func completeRoster(t *testing.T, offer *domain.BookableOffer, adults, children int) *domain.Roster {
	t.Helper()
	roster, err := domain.NewRoster(offer, adults, children)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dob := time.Date(1992, 4, 15, 0, 0, 0, 0, time.UTC)
	for i, p := range roster.Participants() {
		if err := roster.SetFullName(p.Key, "Traveler"); err != nil {
			t.Fatalf("participant %d: %v", i, err)
		}
		if err := roster.SetDateOfBirth(p.Key, dob); err != nil {
			t.Fatalf("participant %d: %v", i, err)
		}
	}
	return roster
}

func TestBuildCollectsAllFailures(t *testing.T) {
	offer := comboOffer()
	roster, err := domain.NewRoster(offer, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fill in only the first traveler; the second stays blank.
	first := roster.Participants()[0]
	if err := roster.SetFullName(first.Key, "Le Van C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := roster.SetDateOfBirth(first.Key, time.Date(1988, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	builder := NewDraftBuilder(validator.New())
	contact := domain.ContactInfo{FullName: "Le Van C", Email: "not-an-email", Phone: "0912345678"}
	_, err = builder.Build(contact, offer, roster, ComputeBreakdown(offer, roster), nil, domain.PaymentVNPay)

	var failure *domain.ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *domain.ValidationFailure, got %v", err)
	}

	got := map[string]bool{}
	for _, f := range failure.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"contact.email", "participants[1].fullName", "participants[1].dateOfBirth"} {
		if !got[want] {
			t.Fatalf("expected failure for %q, got %v", want, failure.Fields)
		}
	}
	if got["participants[0].fullName"] {
		t.Fatal("complete participant must not be reported")
	}
}

func TestBuildRejectsForeignPhone(t *testing.T) {
	offer := comboOffer()
	roster := completeRoster(t, offer, 1, 0)

	builder := NewDraftBuilder(validator.New())
	contact := domain.ContactInfo{FullName: "A", Email: "a@example.com", Phone: "+12025550123"}
	_, err := builder.Build(contact, offer, roster, ComputeBreakdown(offer, roster), nil, domain.PaymentCash)

	var failure *domain.ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *domain.ValidationFailure, got %v", err)
	}
	if len(failure.Fields) != 1 || failure.Fields[0].Field != "contact.phone" {
		t.Fatalf("expected a single contact.phone failure, got %v", failure.Fields)
	}
}

func TestBuildRejectsUnknownPaymentType(t *testing.T) {
	offer := comboOffer()
	roster := completeRoster(t, offer, 1, 0)

	builder := NewDraftBuilder(validator.New())
	contact := domain.ContactInfo{FullName: "A", Email: "a@example.com", Phone: "0912345678"}
	_, err := builder.Build(contact, offer, roster, ComputeBreakdown(offer, roster), nil, domain.PaymentType("paypal"))

	var failure *domain.ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *domain.ValidationFailure, got %v", err)
	}
	if len(failure.Fields) != 1 || failure.Fields[0].Field != "paymentType" {
		t.Fatalf("expected a single paymentType failure, got %v", failure.Fields)
	}
}

func TestBuildUsesDiscountedFinalAmount(t *testing.T) {
	offer := comboOffer()
	roster := completeRoster(t, offer, 2, 1)
	breakdown := ComputeBreakdown(offer, roster)

	discount := &domain.DiscountApplication{
		Code:           "SUMMER10",
		IsValid:        true,
		DiscountAmount: 1000000,
		FinalAmount:    breakdown.Subtotal - 1000000,
	}

	builder := NewDraftBuilder(validator.New())
	contact := domain.ContactInfo{FullName: "Pham D", Email: "d@example.com", Phone: "0912 345 678"}
	draft, err := builder.Build(contact, offer, roster, breakdown, discount, domain.PaymentMoMo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.FinalAmount != breakdown.Subtotal-1000000 {
		t.Fatalf("expected final amount %d, got %d", breakdown.Subtotal-1000000, draft.FinalAmount)
	}
	if draft.Contact.Phone != "+84912345678" {
		t.Fatalf("expected normalized phone, got %q", draft.Contact.Phone)
	}
	if len(draft.Participants) != 3 {
		t.Fatalf("expected 3 participants on the draft, got %d", len(draft.Participants))
	}
}

func TestBuildWithoutDiscountUsesSubtotal(t *testing.T) {
	offer := comboOffer()
	roster := completeRoster(t, offer, 1, 0)
	breakdown := ComputeBreakdown(offer, roster)

	builder := NewDraftBuilder(validator.New())
	contact := domain.ContactInfo{FullName: "A", Email: "a@example.com", Phone: "0912345678"}
	draft, err := builder.Build(contact, offer, roster, breakdown, nil, domain.PaymentVNPay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.FinalAmount != breakdown.Subtotal {
		t.Fatalf("expected final amount %d, got %d", breakdown.Subtotal, draft.FinalAmount)
	}
}
