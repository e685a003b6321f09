// Package service normalizes the catalog's three heterogeneous offer shapes
// into the booking engine's BookableOffer.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"bookingtour_backend/internal/booking/domain"
	"bookingtour_backend/internal/catalog/transport"
	"bookingtour_backend/platform/apperr"
)

// dataError marks malformed upstream catalog data. These abort the booking
// session: no partial offer is ever handed to the engine.
func dataError(format string, args ...interface{}) error {
	return apperr.BadRequest(fmt.Sprintf(format, args...)).WithOp("catalog.Normalize")
}

// requireID parses a catalog identifier, which arrives as a JSON string or
// number.
func requireID(field string, n json.Number) (int64, error) {
	id, err := n.Int64()
	if err != nil || id <= 0 {
		return 0, dataError("%s %q is not a valid identifier", field, n.String())
	}
	return id, nil
}

// requirePrice parses a monetary field that must be present and integral.
func requirePrice(field string, n *json.Number) (int64, error) {
	if n == nil {
		return 0, dataError("%s is missing", field)
	}
	price, err := n.Int64()
	if err != nil || price < 0 {
		return 0, dataError("%s %q is not a valid amount", field, n.String())
	}
	return price, nil
}

// optionalPrice parses a monetary field that defaults to zero when absent
// but must be numeric when present.
func optionalPrice(field string, n *json.Number) (int64, error) {
	if n == nil {
		return 0, nil
	}
	return requirePrice(field, n)
}

// NormalizeTour builds an offer from a tour departure payload.
func NormalizeTour(p *transport.TourOfferPayload) (*domain.BookableOffer, error) {
	if p == nil || p.Departure == nil {
		return nil, dataError("tour payload has no departure")
	}

	itemID, err := requireID("tourId", p.TourID)
	if err != nil {
		return nil, err
	}
	scheduleID, err := requireID("departure.id", p.Departure.ID)
	if err != nil {
		return nil, err
	}
	pricing, err := perPersonPricing("departure", p.Departure.PriceAdult, p.Departure.PriceChild, p.Departure.SingleRoomSurcharge)
	if err != nil {
		return nil, err
	}

	offer := &domain.BookableOffer{
		Kind:       domain.KindTour,
		ItemID:     itemID,
		ScheduleID: scheduleID,
		PerPerson:  pricing,
	}
	return offer, offer.Validate()
}

// NormalizeCombo builds an offer from a combo schedule payload.
func NormalizeCombo(p *transport.ComboOfferPayload) (*domain.BookableOffer, error) {
	if p == nil || p.Schedule == nil {
		return nil, dataError("combo payload has no schedule")
	}

	itemID, err := requireID("comboId", p.ComboID)
	if err != nil {
		return nil, err
	}
	scheduleID, err := requireID("schedule.id", p.Schedule.ID)
	if err != nil {
		return nil, err
	}
	pricing, err := perPersonPricing("schedule", p.Schedule.BasePriceAdult, p.Schedule.BasePriceChild, p.Schedule.SingleRoomPrice)
	if err != nil {
		return nil, err
	}

	offer := &domain.BookableOffer{
		Kind:       domain.KindCombo,
		ItemID:     itemID,
		ScheduleID: scheduleID,
		PerPerson:  pricing,
	}
	return offer, offer.Validate()
}

func perPersonPricing(prefix string, adult, child, single *json.Number) (*domain.PerPersonPricing, error) {
	priceAdult, err := requirePrice(prefix+".priceAdult", adult)
	if err != nil {
		return nil, err
	}
	priceChild, err := optionalPrice(prefix+".priceChild", child)
	if err != nil {
		return nil, err
	}
	surcharge, err := optionalPrice(prefix+".singleRoomSurcharge", single)
	if err != nil {
		return nil, err
	}
	return &domain.PerPersonPricing{
		PriceAdult:          priceAdult,
		PriceChild:          priceChild,
		SingleRoomSurcharge: surcharge,
	}, nil
}

// NormalizeAccommodation builds an offer from a room-inventory payload.
// Nights are sorted by date and must form a contiguous run. Capacity falls
// back to one adult and zero children when the room type omits it, never to
// zero adults.
func NormalizeAccommodation(p *transport.AccommodationOfferPayload) (*domain.BookableOffer, error) {
	if p == nil {
		return nil, dataError("accommodation payload is empty")
	}
	if len(p.RoomInventories) == 0 {
		return nil, dataError("accommodation payload has no room inventories")
	}

	itemID, err := requireID("accommodationId", p.AccommodationID)
	if err != nil {
		return nil, err
	}

	type night struct {
		runID int64
		rate  domain.NightRate
	}
	nights := make([]night, 0, len(p.RoomInventories))
	for i, inv := range p.RoomInventories {
		runID, err := requireID(fmt.Sprintf("roomInventories[%d].id", i), inv.ID)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse(time.DateOnly, inv.Date)
		if err != nil {
			return nil, dataError("roomInventories[%d].date %q is not a valid date", i, inv.Date)
		}
		priceAdult, err := requirePrice(fmt.Sprintf("roomInventories[%d].priceAdult", i), inv.PriceAdult)
		if err != nil {
			return nil, err
		}
		priceChild, err := optionalPrice(fmt.Sprintf("roomInventories[%d].priceChild", i), inv.PriceChild)
		if err != nil {
			return nil, err
		}
		nights = append(nights, night{
			runID: runID,
			rate: domain.NightRate{
				Date:       date,
				PriceAdult: priceAdult,
				PriceChild: priceChild,
			},
		})
	}

	sort.Slice(nights, func(i, j int) bool { return nights[i].rate.Date.Before(nights[j].rate.Date) })
	for i := 1; i < len(nights); i++ {
		prev, cur := nights[i-1].rate.Date, nights[i].rate.Date
		if cur.Equal(prev) {
			return nil, dataError("duplicate night %s in room inventories", cur.Format(time.DateOnly))
		}
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			return nil, dataError("room inventory nights are not contiguous around %s", cur.Format(time.DateOnly))
		}
	}

	capacity := &domain.RoomCapacity{MaxAdults: 1, MaxChildren: 0}
	if p.RoomType != nil {
		if p.RoomType.MaxAdult != nil && *p.RoomType.MaxAdult > 0 {
			capacity.MaxAdults = *p.RoomType.MaxAdult
		}
		if p.RoomType.MaxChildren != nil && *p.RoomType.MaxChildren >= 0 {
			capacity.MaxChildren = *p.RoomType.MaxChildren
		}
	}

	runIDs := make([]int64, len(nights))
	rates := make([]domain.NightRate, len(nights))
	for i, n := range nights {
		runIDs[i] = n.runID
		rates[i] = n.rate
	}

	offer := &domain.BookableOffer{
		Kind:       domain.KindAccommodation,
		ItemID:     itemID,
		RoomRunIDs: runIDs,
		Nights:     rates,
		Capacity:   capacity,
	}
	return offer, offer.Validate()
}

// OfferClient is the narrow view of the catalog HTTP client the service needs.
type OfferClient interface {
	TourOffer(ctx context.Context, itemID, scheduleID int64) (*transport.TourOfferPayload, error)
	ComboOffer(ctx context.Context, itemID, scheduleID int64) (*transport.ComboOfferPayload, error)
	AccommodationOffer(ctx context.Context, itemID int64, roomRunIDs []int64) (*transport.AccommodationOfferPayload, error)
}

// Service fetches raw catalog data and normalizes it.
type Service struct {
	client OfferClient
}

// New creates a catalog service.
func New(client OfferClient) *Service {
	return &Service{client: client}
}

// FetchOffer retrieves and normalizes the offer for a booking selection.
func (s *Service) FetchOffer(ctx context.Context, kind domain.OfferKind, itemID, scheduleID int64, roomRunIDs []int64) (*domain.BookableOffer, error) {
	switch kind {
	case domain.KindTour:
		payload, err := s.client.TourOffer(ctx, itemID, scheduleID)
		if err != nil {
			return nil, err
		}
		return NormalizeTour(payload)
	case domain.KindCombo:
		payload, err := s.client.ComboOffer(ctx, itemID, scheduleID)
		if err != nil {
			return nil, err
		}
		return NormalizeCombo(payload)
	case domain.KindAccommodation:
		payload, err := s.client.AccommodationOffer(ctx, itemID, roomRunIDs)
		if err != nil {
			return nil, err
		}
		return NormalizeAccommodation(payload)
	default:
		return nil, apperr.BadRequest(fmt.Sprintf("unknown offer kind %q", kind))
	}
}
