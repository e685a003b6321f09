// Package transport defines the raw payload shapes returned by the external
// Booking Catalog Service. Each bookable kind has its own shape; the catalog
// service normalizes them into one BookableOffer.
package transport

import "encoding/json"

// TourOfferPayload is the catalog's answer for a tour departure.
type TourOfferPayload struct {
	TourID    json.Number       `json:"tourId"`
	Departure *DeparturePayload `json:"departure"`
}

// DeparturePayload carries a tour departure's identity and per-person prices.
type DeparturePayload struct {
	ID                  json.Number  `json:"id"`
	DepartureDate       string       `json:"departureDate,omitempty"`
	PriceAdult          *json.Number `json:"priceAdult"`
	PriceChild          *json.Number `json:"priceChild"`
	SingleRoomSurcharge *json.Number `json:"singleRoomSurcharge"`
}

// ComboOfferPayload is the catalog's answer for a combo schedule.
type ComboOfferPayload struct {
	ComboID  json.Number           `json:"comboId"`
	Schedule *ComboSchedulePayload `json:"schedule"`
}

// ComboSchedulePayload carries a combo schedule's identity and base prices.
type ComboSchedulePayload struct {
	ID              json.Number  `json:"id"`
	StartDate       string       `json:"startDate,omitempty"`
	BasePriceAdult  *json.Number `json:"basePriceAdult"`
	BasePriceChild  *json.Number `json:"basePriceChild"`
	SingleRoomPrice *json.Number `json:"singleRoomPrice"`
}

// AccommodationOfferPayload is the catalog's answer for a room-inventory run.
type AccommodationOfferPayload struct {
	AccommodationID json.Number            `json:"accommodationId"`
	RoomType        *RoomTypePayload       `json:"roomType"`
	RoomInventories []RoomInventoryPayload `json:"roomInventories"`
}

// RoomTypePayload carries the fixed guest capacity of the selected room.
type RoomTypePayload struct {
	Name        string `json:"name,omitempty"`
	MaxAdult    *int   `json:"maxAdult"`
	MaxChildren *int   `json:"maxChildren"`
}

// RoomInventoryPayload is one night of availability and pricing.
type RoomInventoryPayload struct {
	ID         json.Number  `json:"id"`
	Date       string       `json:"date"`
	PriceAdult *json.Number `json:"priceAdult"`
	PriceChild *json.Number `json:"priceChild"`
}
