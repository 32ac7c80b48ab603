package service

import (
	"context"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

const tablesKey = "tables"

// Tables manages the table collection. Like restaurants, saving with an
// unknown identifier inserts; UpdateAvailability is the one strict path.
type Tables struct {
	c collection[model.Table, *model.Table]
}

// NewTables creates the table service over the given store.
func NewTables(store storage.Store) *Tables {
	return &Tables{c: collection[model.Table, *model.Table]{
		store: store,
		key:   tablesKey,
		mode:  insertMissing,
	}}
}

// All returns every table in storage order.
func (s *Tables) All(ctx context.Context) ([]model.Table, error) {
	return s.c.all(ctx)
}

// ByID returns the table with the given identifier, or ok=false.
func (s *Tables) ByID(ctx context.Context, id string) (model.Table, bool, error) {
	return s.c.byID(ctx, id)
}

// ByRestaurant returns every table belonging to the given restaurant.
func (s *Tables) ByRestaurant(ctx context.Context, restaurantID string) ([]model.Table, error) {
	return s.c.where(ctx, func(t *model.Table) bool { return t.RestaurantID == restaurantID })
}

// Save creates or upserts a table. New tables default to available unless
// the patch says otherwise.
func (s *Tables) Save(ctx context.Context, p model.TablePatch) (model.Table, error) {
	return s.c.save(ctx, p.ID,
		func() model.Table {
			t := model.Table{IsAvailable: true}
			applyTablePatch(&t, p)
			return t
		},
		func(t *model.Table) { applyTablePatch(t, p) },
	)
}

// Update saves a fully-populated table.
func (s *Tables) Update(ctx context.Context, t model.Table) (model.Table, error) {
	return s.Save(ctx, model.TablePatch{
		ID:           t.ID,
		RestaurantID: &t.RestaurantID,
		Number:       &t.Number,
		Capacity:     &t.Capacity,
		IsAvailable:  &t.IsAvailable,
	})
}

// UpdateAvailability flips the availability flag of an existing table. It
// fails with ErrNotFound for an unknown identifier; it never inserts.
func (s *Tables) UpdateAvailability(ctx context.Context, id string, isAvailable bool) (model.Table, error) {
	return s.c.update(ctx, id, func(t *model.Table) { t.IsAvailable = isAvailable })
}

// Delete removes the table. Unknown identifiers are a no-op.
func (s *Tables) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

func applyTablePatch(t *model.Table, p model.TablePatch) {
	if p.RestaurantID != nil {
		t.RestaurantID = *p.RestaurantID
	}
	if p.Number != nil {
		t.Number = *p.Number
	}
	if p.Capacity != nil {
		t.Capacity = *p.Capacity
	}
	if p.IsAvailable != nil {
		t.IsAvailable = *p.IsAvailable
	}
}
