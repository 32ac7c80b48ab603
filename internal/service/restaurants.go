package service

import (
	"context"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

// Stored without the @ prefix the other collections use; the keys predate
// the prefix convention and must stay stable for existing data.
const restaurantsKey = "restaurants"

// Restaurants manages the restaurant collection. Saving with an unknown
// identifier inserts a record at that identifier instead of failing.
type Restaurants struct {
	c collection[model.Restaurant, *model.Restaurant]
}

// NewRestaurants creates the restaurant service over the given store.
func NewRestaurants(store storage.Store) *Restaurants {
	return &Restaurants{c: collection[model.Restaurant, *model.Restaurant]{
		store: store,
		key:   restaurantsKey,
		mode:  insertMissing,
	}}
}

// All returns every restaurant in storage order.
func (s *Restaurants) All(ctx context.Context) ([]model.Restaurant, error) {
	return s.c.all(ctx)
}

// ByID returns the restaurant with the given identifier, or ok=false.
func (s *Restaurants) ByID(ctx context.Context, id string) (model.Restaurant, bool, error) {
	return s.c.byID(ctx, id)
}

// ByOwner returns every restaurant owned by the given user.
func (s *Restaurants) ByOwner(ctx context.Context, ownerID string) ([]model.Restaurant, error) {
	return s.c.where(ctx, func(r *model.Restaurant) bool { return r.OwnerID == ownerID })
}

// Save creates or upserts a restaurant.
func (s *Restaurants) Save(ctx context.Context, p model.RestaurantPatch) (model.Restaurant, error) {
	return s.c.save(ctx, p.ID,
		func() model.Restaurant {
			var r model.Restaurant
			applyRestaurantPatch(&r, p)
			return r
		},
		func(r *model.Restaurant) { applyRestaurantPatch(r, p) },
	)
}

// Update saves a fully-populated restaurant. Call sites use it when the
// record must already exist, though the semantics match Save.
func (s *Restaurants) Update(ctx context.Context, r model.Restaurant) (model.Restaurant, error) {
	return s.Save(ctx, model.RestaurantPatch{
		ID:      r.ID,
		Name:    &r.Name,
		Address: &r.Address,
		Phone:   &r.Phone,
		Email:   &r.Email,
		OwnerID: &r.OwnerID,
	})
}

// Delete removes the restaurant. Tables and reservations that reference it
// are untouched; callers wanting integrity go through the workflow layer.
func (s *Restaurants) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

func applyRestaurantPatch(r *model.Restaurant, p model.RestaurantPatch) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.OwnerID != nil {
		r.OwnerID = *p.OwnerID
	}
}
