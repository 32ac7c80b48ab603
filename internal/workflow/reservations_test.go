package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/service"
	"tavolo/internal/storage"
)

type fixture struct {
	restaurants  *service.Restaurants
	tables       *service.Tables
	customers    *service.Customers
	reservations *service.Reservations
	bookings     *Bookings
	venues       *Venues
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemory()
	f := &fixture{
		restaurants:  service.NewRestaurants(store),
		tables:       service.NewTables(store),
		customers:    service.NewCustomers(store),
		reservations: service.NewReservations(store),
	}
	f.bookings = NewBookings(f.restaurants, f.tables, f.customers, f.reservations)
	f.venues = NewVenues(f.restaurants, f.tables, f.reservations)
	return f
}

func (f *fixture) seedTable(t *testing.T, restaurantID string, capacity int) model.Table {
	t.Helper()
	number := 1
	table, err := f.tables.Save(context.Background(), model.TablePatch{
		RestaurantID: &restaurantID,
		Number:       &number,
		Capacity:     &capacity,
	})
	require.NoError(t, err)
	return table
}

func bookingInput(restaurantID, tableID string) NewReservationInput {
	return NewReservationInput{
		RestaurantID:  restaurantID,
		TableID:       tableID,
		Date:          time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		Guests:        2,
		CustomerName:  "Grace",
		CustomerEmail: "grace@example.com",
		CustomerPhone: "555-0111",
	}
}

func TestCreateReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.seedTable(t, "r1", 4)

	reservation, err := f.bookings.Create(ctx, bookingInput("r1", table.ID))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, table.ID, reservation.TableID)

	// The inline customer was captured.
	customer, ok, err := f.customers.ByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, customer.ID, reservation.CustomerID)

	// The table is now booked.
	got, ok, err := f.tables.ByID(ctx, table.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.IsAvailable)
}

func TestCreateReservationReusesCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.seedTable(t, "r1", 4)
	second := f.seedTable(t, "r1", 4)

	r1, err := f.bookings.Create(ctx, bookingInput("r1", first.ID))
	require.NoError(t, err)
	r2, err := f.bookings.Create(ctx, bookingInput("r1", second.ID))
	require.NoError(t, err)

	assert.Equal(t, r1.CustomerID, r2.CustomerID)
	all, err := f.customers.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateReservationRejectsOversizedParty(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "r1", 2)

	in := bookingInput("r1", table.ID)
	in.Guests = 6
	_, err := f.bookings.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrTableTooSmall)
}

func TestCreateReservationUnknownTable(t *testing.T) {
	f := newFixture(t)
	_, err := f.bookings.Create(context.Background(), bookingInput("r1", "nope"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCancelFreesTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.seedTable(t, "r1", 4)

	reservation, err := f.bookings.Create(ctx, bookingInput("r1", table.ID))
	require.NoError(t, err)

	updated, err := f.bookings.UpdateStatus(ctx, reservation.ID, model.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, updated.Status)

	got, ok, err := f.tables.ByID(ctx, table.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.IsAvailable)
}

func TestConfirmKeepsTableBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.seedTable(t, "r1", 4)

	reservation, err := f.bookings.Create(ctx, bookingInput("r1", table.ID))
	require.NoError(t, err)

	updated, err := f.bookings.UpdateStatus(ctx, reservation.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)

	got, _, err := f.tables.ByID(ctx, table.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	f := newFixture(t)
	_, err := f.bookings.UpdateStatus(context.Background(), "nope", model.StatusConfirmed)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
