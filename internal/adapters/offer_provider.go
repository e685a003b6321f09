// Package adapters contains thin implementations of the narrow interfaces
// modules declare for each other, so no domain module imports another
// module's client directly.
package adapters

import (
	"context"

	"bookingtour_backend/internal/booking/domain"
	bookingservice "bookingtour_backend/internal/booking/service"
	catalogservice "bookingtour_backend/internal/catalog/service"
)

// CatalogOfferProvider adapts the catalog service to the booking engine's
// OfferProvider port.
type CatalogOfferProvider struct {
	catalog *catalogservice.Service
}

// NewCatalogOfferProvider creates the adapter.
func NewCatalogOfferProvider(catalog *catalogservice.Service) *CatalogOfferProvider {
	return &CatalogOfferProvider{catalog: catalog}
}

// OfferForBooking fetches and normalizes the selected offer.
func (a *CatalogOfferProvider) OfferForBooking(ctx context.Context, sel bookingservice.OfferSelection) (*domain.BookableOffer, error) {
	return a.catalog.FetchOffer(ctx, sel.Kind, sel.ItemID, sel.ScheduleID, sel.RoomRunIDs)
}

// Compile-time check.
var _ bookingservice.OfferProvider = (*CatalogOfferProvider)(nil)
