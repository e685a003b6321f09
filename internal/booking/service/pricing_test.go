package service

import (
	"reflect"
	"testing"
	"time"

	"bookingtour_backend/internal/booking/domain"
)

func comboOffer() *domain.BookableOffer {
	return &domain.BookableOffer{
		Kind:       domain.KindCombo,
		ItemID:     5,
		ScheduleID: 19,
		PerPerson: &domain.PerPersonPricing{
			PriceAdult:          4500000,
			PriceChild:          3000000,
			SingleRoomSurcharge: 500000,
		},
	}
}

func twoNightOffer(maxAdults, maxChildren int) *domain.BookableOffer {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &domain.BookableOffer{
		Kind:       domain.KindAccommodation,
		ItemID:     7,
		RoomRunIDs: []int64{100, 101},
		Nights: []domain.NightRate{
			{Date: start, PriceAdult: 400000, PriceChild: 200000},
			{Date: start.AddDate(0, 0, 1), PriceAdult: 450000, PriceChild: 200000},
		},
		Capacity: &domain.RoomCapacity{MaxAdults: maxAdults, MaxChildren: maxChildren},
	}
}

func TestComputeBreakdownCombo(t *testing.T) {
	offer := comboOffer()
	roster, err := domain.NewRoster(offer, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := roster.SetNeedSingleRoom(roster.Participants()[0].Key, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := ComputeBreakdown(offer, roster)
	if breakdown.Subtotal != 12500000 {
		t.Fatalf("expected subtotal 12500000, got %d", breakdown.Subtotal)
	}
	if len(breakdown.LineItems) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(breakdown.LineItems))
	}

	wantAmounts := map[string]int64{
		"Adult":                 9000000,
		"Child":                 3000000,
		"Single room surcharge": 500000,
	}
	for _, line := range breakdown.LineItems {
		if line.Amount != wantAmounts[line.Label] {
			t.Fatalf("line %q: expected amount %d, got %d", line.Label, wantAmounts[line.Label], line.Amount)
		}
	}
}

func TestComputeBreakdownAccommodation(t *testing.T) {
	offer := twoNightOffer(2, 0)
	roster, err := domain.NewRoster(offer, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := ComputeBreakdown(offer, roster)
	if breakdown.Subtotal != 1700000 {
		t.Fatalf("expected subtotal 1700000, got %d", breakdown.Subtotal)
	}
	if len(breakdown.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(breakdown.LineItems))
	}
	for _, line := range breakdown.LineItems {
		if line.Label != "Adult" {
			t.Fatalf("expected only adult lines, got %q", line.Label)
		}
		if line.Night == "" {
			t.Fatal("expected nightly lines to carry their date")
		}
	}
}

func TestComputeBreakdownAccommodationWithChildren(t *testing.T) {
	offer := twoNightOffer(2, 1)
	roster, err := domain.NewRoster(offer, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := ComputeBreakdown(offer, roster)
	// 2 adults and 1 child per night: (800k+200k) + (900k+200k).
	if breakdown.Subtotal != 2100000 {
		t.Fatalf("expected subtotal 2100000, got %d", breakdown.Subtotal)
	}
	if len(breakdown.LineItems) != 4 {
		t.Fatalf("expected 4 line items, got %d", len(breakdown.LineItems))
	}
}

func TestComputeBreakdownOmitsZeroLines(t *testing.T) {
	offer := comboOffer()
	roster, err := domain.NewRoster(offer, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := ComputeBreakdown(offer, roster)
	if len(breakdown.LineItems) != 1 {
		t.Fatalf("expected a single adult line, got %d lines", len(breakdown.LineItems))
	}
	if breakdown.LineItems[0].Label != "Adult" {
		t.Fatalf("expected adult line, got %q", breakdown.LineItems[0].Label)
	}
	if breakdown.Subtotal != 9000000 {
		t.Fatalf("expected subtotal 9000000, got %d", breakdown.Subtotal)
	}
}

func TestComputeBreakdownSubtotalMatchesLines(t *testing.T) {
	offer := comboOffer()
	roster, err := domain.NewRoster(offer, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := ComputeBreakdown(offer, roster)
	var sum int64
	for _, line := range breakdown.LineItems {
		sum += line.Amount
		if line.Amount != int64(line.Quantity)*line.UnitPrice {
			t.Fatalf("line %q: amount %d does not match %d x %d", line.Label, line.Amount, line.Quantity, line.UnitPrice)
		}
	}
	if sum != breakdown.Subtotal {
		t.Fatalf("subtotal %d does not equal line sum %d", breakdown.Subtotal, sum)
	}
}

func TestComputeBreakdownIsDeterministic(t *testing.T) {
	offer := comboOffer()
	roster, err := domain.NewRoster(offer, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := ComputeBreakdown(offer, roster)
	second := ComputeBreakdown(offer, roster)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical breakdowns for the same offer and roster")
	}
}
