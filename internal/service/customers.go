package service

import (
	"context"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

const customersKey = "@customers"

// Customers manages the customer collection. Customers are captured at
// booking time and deduplicated by email in the workflow layer, not here.
type Customers struct {
	c collection[model.Customer, *model.Customer]
}

// NewCustomers creates the customer service over the given store.
func NewCustomers(store storage.Store) *Customers {
	return &Customers{c: collection[model.Customer, *model.Customer]{
		store: store,
		key:   customersKey,
		mode:  strictUpdate,
	}}
}

// All returns every customer in storage order.
func (s *Customers) All(ctx context.Context) ([]model.Customer, error) {
	return s.c.all(ctx)
}

// ByID returns the customer with the given identifier, or ok=false.
func (s *Customers) ByID(ctx context.Context, id string) (model.Customer, bool, error) {
	return s.c.byID(ctx, id)
}

// ByEmail returns the first customer with the given email, or ok=false.
func (s *Customers) ByEmail(ctx context.Context, email string) (model.Customer, bool, error) {
	return s.c.first(ctx, func(c *model.Customer) bool { return c.Email == email })
}

// Save creates or updates a customer; updates against an unknown identifier
// fail with ErrNotFound.
func (s *Customers) Save(ctx context.Context, p model.CustomerPatch) (model.Customer, error) {
	return s.c.save(ctx, p.ID,
		func() model.Customer {
			var c model.Customer
			applyCustomerPatch(&c, p)
			return c
		},
		func(c *model.Customer) { applyCustomerPatch(c, p) },
	)
}

// Delete removes the customer. Unknown identifiers are a no-op.
func (s *Customers) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

func applyCustomerPatch(c *model.Customer, p model.CustomerPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}
