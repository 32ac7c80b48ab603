package workflow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tavolo/internal/logger"
	"tavolo/internal/model"
	"tavolo/internal/service"
)

// ErrHasDependents is returned by restrict-mode deletes while tables or
// reservations still reference the record.
var ErrHasDependents = errors.New("record still has dependents")

// DeletePolicy decides what a venue delete does about dependent records.
// The raw services have no notion of relationships; this layer does.
type DeletePolicy int

const (
	// Restrict refuses the delete while dependents exist.
	Restrict DeletePolicy = iota
	// Cascade deletes dependents first, then the record itself.
	Cascade
)

// Venues owns restaurant and table administration: creation, edits, and
// deletes with referential integrity.
type Venues struct {
	restaurants  *service.Restaurants
	tables       *service.Tables
	reservations *service.Reservations
}

// NewVenues creates the venue workflow.
func NewVenues(restaurants *service.Restaurants, tables *service.Tables, reservations *service.Reservations) *Venues {
	return &Venues{restaurants: restaurants, tables: tables, reservations: reservations}
}

// RestaurantInput is the add/edit restaurant form payload.
type RestaurantInput struct {
	ID      string
	Name    string `validate:"required"`
	Address string `validate:"required"`
	Phone   string `validate:"required"`
	Email   string `validate:"required,email"`
	OwnerID string `validate:"required"`
}

// SaveRestaurant validates and saves a restaurant.
func (v *Venues) SaveRestaurant(ctx context.Context, in RestaurantInput) (model.Restaurant, error) {
	if err := validateStruct(in); err != nil {
		return model.Restaurant{}, err
	}
	return v.restaurants.Save(ctx, model.RestaurantPatch{
		ID:      in.ID,
		Name:    &in.Name,
		Address: &in.Address,
		Phone:   &in.Phone,
		Email:   &in.Email,
		OwnerID: &in.OwnerID,
	})
}

// TableInput is the add-table form payload.
type TableInput struct {
	RestaurantID string `validate:"required"`
	Number       int    `validate:"gt=0"`
	Capacity     int    `validate:"gt=0"`
}

// AddTable validates and creates a table, available by default.
func (v *Venues) AddTable(ctx context.Context, in TableInput) (model.Table, error) {
	if err := validateStruct(in); err != nil {
		return model.Table{}, err
	}
	return v.tables.Save(ctx, model.TablePatch{
		RestaurantID: &in.RestaurantID,
		Number:       &in.Number,
		Capacity:     &in.Capacity,
	})
}

// DeleteRestaurant removes a restaurant under the given policy. Restrict
// fails with ErrHasDependents while tables or reservations reference it;
// Cascade deletes them first.
func (v *Venues) DeleteRestaurant(ctx context.Context, id string, policy DeletePolicy) error {
	tables, err := v.tables.ByRestaurant(ctx, id)
	if err != nil {
		return err
	}
	reservations, err := v.reservations.ByRestaurant(ctx, id)
	if err != nil {
		return err
	}

	if policy == Restrict && (len(tables) > 0 || len(reservations) > 0) {
		return fmt.Errorf("restaurant %q has %d tables and %d reservations: %w",
			id, len(tables), len(reservations), ErrHasDependents)
	}

	for _, r := range reservations {
		if err := v.reservations.Delete(ctx, r.ID); err != nil {
			return err
		}
	}
	for _, t := range tables {
		if err := v.tables.Delete(ctx, t.ID); err != nil {
			return err
		}
	}
	if err := v.restaurants.Delete(ctx, id); err != nil {
		return err
	}
	logger.L().Info("restaurant deleted", zap.String("restaurant", id),
		zap.Int("tables", len(tables)), zap.Int("reservations", len(reservations)))
	return nil
}

// DeleteTable removes a table under the given policy, treating reservations
// against it as dependents.
func (v *Venues) DeleteTable(ctx context.Context, id string, policy DeletePolicy) error {
	all, err := v.reservations.All(ctx)
	if err != nil {
		return err
	}
	var dependents []model.Reservation
	for _, r := range all {
		if r.TableID == id {
			dependents = append(dependents, r)
		}
	}

	if policy == Restrict && len(dependents) > 0 {
		return fmt.Errorf("table %q has %d reservations: %w", id, len(dependents), ErrHasDependents)
	}

	for _, r := range dependents {
		if err := v.reservations.Delete(ctx, r.ID); err != nil {
			return err
		}
	}
	return v.tables.Delete(ctx, id)
}
