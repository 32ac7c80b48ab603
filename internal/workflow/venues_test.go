package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
)

func seedVenue(t *testing.T) (*fixture, model.Restaurant, model.Table) {
	t.Helper()
	f := newFixture(t)
	restaurant, err := f.venues.SaveRestaurant(context.Background(), RestaurantInput{
		Name:    "Chez Test",
		Address: "1 Main St",
		Phone:   "555-0120",
		Email:   "chez@example.com",
		OwnerID: "u1",
	})
	require.NoError(t, err)
	table := f.seedTable(t, restaurant.ID, 4)
	return f, restaurant, table
}

func TestSaveRestaurantValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.venues.SaveRestaurant(context.Background(), RestaurantInput{
		Name:    "No contact",
		Address: "1 Main St",
		Phone:   "555-0120",
		Email:   "not-an-email",
		OwnerID: "u1",
	})
	assert.Error(t, err)
}

func TestAddTable(t *testing.T) {
	f := newFixture(t)
	table, err := f.venues.AddTable(context.Background(), TableInput{
		RestaurantID: "r1",
		Number:       3,
		Capacity:     6,
	})
	require.NoError(t, err)
	assert.True(t, table.IsAvailable)

	_, err = f.venues.AddTable(context.Background(), TableInput{
		RestaurantID: "r1",
		Number:       0,
		Capacity:     6,
	})
	assert.Error(t, err)
}

func TestDeleteRestaurantRestrict(t *testing.T) {
	f, restaurant, _ := seedVenue(t)
	ctx := context.Background()

	err := f.venues.DeleteRestaurant(ctx, restaurant.ID, Restrict)
	assert.ErrorIs(t, err, ErrHasDependents)

	// Still there.
	_, ok, err := f.restaurants.ByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteRestaurantCascade(t *testing.T) {
	f, restaurant, table := seedVenue(t)
	ctx := context.Background()

	_, err := f.bookings.Create(ctx, bookingInput(restaurant.ID, table.ID))
	require.NoError(t, err)

	require.NoError(t, f.venues.DeleteRestaurant(ctx, restaurant.ID, Cascade))

	_, ok, err := f.restaurants.ByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	tables, err := f.tables.ByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, tables)

	reservations, err := f.reservations.ByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestDeleteRestaurantWithoutDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	restaurant, err := f.venues.SaveRestaurant(ctx, RestaurantInput{
		Name:    "Empty",
		Address: "2 Main St",
		Phone:   "555-0121",
		Email:   "empty@example.com",
		OwnerID: "u1",
	})
	require.NoError(t, err)

	require.NoError(t, f.venues.DeleteRestaurant(ctx, restaurant.ID, Restrict))
}

func TestDeleteTableRestrictAndCascade(t *testing.T) {
	f, restaurant, table := seedVenue(t)
	ctx := context.Background()

	reservation, err := f.bookings.Create(ctx, bookingInput(restaurant.ID, table.ID))
	require.NoError(t, err)

	err = f.venues.DeleteTable(ctx, table.ID, Restrict)
	assert.ErrorIs(t, err, ErrHasDependents)

	require.NoError(t, f.venues.DeleteTable(ctx, table.ID, Cascade))

	_, ok, err := f.tables.ByID(ctx, table.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = f.reservations.ByID(ctx, reservation.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
