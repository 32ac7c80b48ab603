package service

import (
	"context"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

const reservationsKey = "@reservations"

// Reservations manages the reservation collection. Updates against an
// unknown identifier fail with ErrNotFound.
type Reservations struct {
	c collection[model.Reservation, *model.Reservation]
}

// NewReservations creates the reservation service over the given store.
func NewReservations(store storage.Store) *Reservations {
	return &Reservations{c: collection[model.Reservation, *model.Reservation]{
		store: store,
		key:   reservationsKey,
		mode:  strictUpdate,
	}}
}

// All returns every reservation in storage order.
func (s *Reservations) All(ctx context.Context) ([]model.Reservation, error) {
	return s.c.all(ctx)
}

// ByID returns the reservation with the given identifier, or ok=false.
func (s *Reservations) ByID(ctx context.Context, id string) (model.Reservation, bool, error) {
	return s.c.byID(ctx, id)
}

// ByRestaurant returns every reservation at the given restaurant.
func (s *Reservations) ByRestaurant(ctx context.Context, restaurantID string) ([]model.Reservation, error) {
	return s.c.where(ctx, func(r *model.Reservation) bool { return r.RestaurantID == restaurantID })
}

// ByCustomer returns every reservation made by the given customer.
func (s *Reservations) ByCustomer(ctx context.Context, customerID string) ([]model.Reservation, error) {
	return s.c.where(ctx, func(r *model.Reservation) bool { return r.CustomerID == customerID })
}

// Save creates or updates a reservation; updates against an unknown
// identifier fail with ErrNotFound.
func (s *Reservations) Save(ctx context.Context, p model.ReservationPatch) (model.Reservation, error) {
	return s.c.save(ctx, p.ID,
		func() model.Reservation {
			var r model.Reservation
			applyReservationPatch(&r, p)
			return r
		},
		func(r *model.Reservation) { applyReservationPatch(r, p) },
	)
}

// Delete removes the reservation. Unknown identifiers are a no-op.
func (s *Reservations) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

func applyReservationPatch(r *model.Reservation, p model.ReservationPatch) {
	if p.RestaurantID != nil {
		r.RestaurantID = *p.RestaurantID
	}
	if p.TableID != nil {
		r.TableID = *p.TableID
	}
	if p.CustomerID != nil {
		r.CustomerID = *p.CustomerID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.NumberOfGuests != nil {
		r.NumberOfGuests = *p.NumberOfGuests
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
