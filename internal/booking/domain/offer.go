// Package domain holds the booking engine's core types: offers, rosters,
// price breakdowns, and drafts. Everything here is pure data and logic;
// network and HTTP concerns live in the surrounding layers.
package domain

import (
	"fmt"
	"time"
)

// OfferKind discriminates the three bookable item shapes.
type OfferKind string

const (
	KindTour          OfferKind = "tour"
	KindCombo         OfferKind = "combo"
	KindAccommodation OfferKind = "accommodation"
)

// Valid reports whether the kind is one of the known variants.
func (k OfferKind) Valid() bool {
	switch k {
	case KindTour, KindCombo, KindAccommodation:
		return true
	}
	return false
}

// PerPersonPricing is the flat per-traveler pricing used by tours and combos.
// Amounts are in VND, which has no fractional subunit.
type PerPersonPricing struct {
	PriceAdult          int64 `json:"priceAdult"`
	PriceChild          int64 `json:"priceChild"`
	SingleRoomSurcharge int64 `json:"singleRoomSurcharge"`
}

// NightRate is one night of an accommodation run.
type NightRate struct {
	Date       time.Time `json:"date"`
	PriceAdult int64     `json:"priceAdult"`
	PriceChild int64     `json:"priceChild"`
}

// RoomCapacity is the fixed guest capacity of an accommodation room type.
type RoomCapacity struct {
	MaxAdults   int `json:"maxAdults"`
	MaxChildren int `json:"maxChildren"`
}

// BookableOffer is the normalized view of what is being booked. Kind selects
// which variant fields are populated: PerPerson + ScheduleID for tour/combo,
// Nights + RoomRunIDs + Capacity for accommodation.
type BookableOffer struct {
	Kind       OfferKind         `json:"kind"`
	ItemID     int64             `json:"itemId"`
	ScheduleID int64             `json:"scheduleId,omitempty"`
	RoomRunIDs []int64           `json:"roomRunIds,omitempty"`
	PerPerson  *PerPersonPricing `json:"perPerson,omitempty"`
	Nights     []NightRate       `json:"nights,omitempty"`
	Capacity   *RoomCapacity     `json:"capacity,omitempty"`
}

// IsAccommodation reports whether the offer is a room-inventory run.
func (o *BookableOffer) IsAccommodation() bool {
	return o.Kind == KindAccommodation
}

// Validate checks the structural invariants the catalog adapter must
// guarantee before an offer enters a booking session.
func (o *BookableOffer) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("unknown offer kind %q", o.Kind)
	}
	if o.ItemID == 0 {
		return fmt.Errorf("offer is missing an item id")
	}

	if o.Kind == KindAccommodation {
		if len(o.Nights) == 0 {
			return fmt.Errorf("accommodation offer has no nights")
		}
		if len(o.RoomRunIDs) != len(o.Nights) {
			return fmt.Errorf("accommodation offer has %d room runs for %d nights", len(o.RoomRunIDs), len(o.Nights))
		}
		if o.Capacity == nil || o.Capacity.MaxAdults < 1 {
			return fmt.Errorf("accommodation offer needs a capacity of at least one adult")
		}
		for i := 1; i < len(o.Nights); i++ {
			prev, cur := o.Nights[i-1].Date, o.Nights[i].Date
			if !cur.Equal(prev.AddDate(0, 0, 1)) {
				return fmt.Errorf("accommodation nights are not contiguous at %s", cur.Format(time.DateOnly))
			}
		}
		return nil
	}

	if o.ScheduleID == 0 {
		return fmt.Errorf("%s offer is missing a schedule id", o.Kind)
	}
	if o.PerPerson == nil {
		return fmt.Errorf("%s offer is missing pricing", o.Kind)
	}
	return nil
}
