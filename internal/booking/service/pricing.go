package service

import (
	"time"

	"bookingtour_backend/internal/booking/domain"
)

// Line item labels as shown on the booking summary.
const (
	labelAdult      = "Adult"
	labelChild      = "Child"
	labelSingleRoom = "Single room surcharge"
)

// perPersonLines prices a tour or combo: flat per-category amounts, one line
// per non-zero term. The single-room line only appears when someone asked
// for one.
func perPersonLines(pricing *domain.PerPersonPricing, roster *domain.Roster) []domain.LineItem {
	if pricing == nil {
		pricing = &domain.PerPersonPricing{}
	}

	singleRooms := roster.NumSingleRooms()
	terms := []domain.LineItem{
		{Label: labelAdult, Quantity: roster.NumAdults(), UnitPrice: pricing.PriceAdult},
		{Label: labelChild, Quantity: roster.NumChildren(), UnitPrice: pricing.PriceChild},
		{Label: labelSingleRoom, Quantity: singleRooms, UnitPrice: pricing.SingleRoomSurcharge},
	}

	lines := make([]domain.LineItem, 0, len(terms))
	for _, term := range terms {
		term.Amount = int64(term.Quantity) * term.UnitPrice
		if term.Amount == 0 {
			continue
		}
		if term.Label == labelSingleRoom && singleRooms == 0 {
			continue
		}
		lines = append(lines, term)
	}
	return lines
}

// nightlyLines prices an accommodation run: one group of lines per night.
// The adult line is always present; the child line is omitted when no
// children are staying.
func nightlyLines(nights []domain.NightRate, roster *domain.Roster) []domain.LineItem {
	lines := make([]domain.LineItem, 0, len(nights)*2)
	for _, night := range nights {
		date := night.Date.Format(time.DateOnly)
		lines = append(lines, domain.LineItem{
			Label:     labelAdult,
			Night:     date,
			Quantity:  roster.NumAdults(),
			UnitPrice: night.PriceAdult,
			Amount:    int64(roster.NumAdults()) * night.PriceAdult,
		})
		if roster.NumChildren() > 0 {
			lines = append(lines, domain.LineItem{
				Label:     labelChild,
				Night:     date,
				Quantity:  roster.NumChildren(),
				UnitPrice: night.PriceChild,
				Amount:    int64(roster.NumChildren()) * night.PriceChild,
			})
		}
	}
	return lines
}

// ComputeBreakdown computes the itemized price for an offer and roster.
// It is a pure function: the same offer/roster snapshot always yields the
// same breakdown, and the subtotal is exactly the sum of the line amounts.
// All amounts are integer VND, so no rounding is involved.
func ComputeBreakdown(offer *domain.BookableOffer, roster *domain.Roster) domain.PriceBreakdown {
	var lines []domain.LineItem
	if offer.IsAccommodation() {
		lines = nightlyLines(offer.Nights, roster)
	} else {
		lines = perPersonLines(offer.PerPerson, roster)
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.Amount
	}

	return domain.PriceBreakdown{
		Subtotal:  subtotal,
		LineItems: lines,
	}
}
