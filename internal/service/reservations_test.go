package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

func newReservation(t *testing.T, reservations *Reservations, restaurantID, customerID string) model.Reservation {
	t.Helper()
	date := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	status := model.StatusPending
	r, err := reservations.Save(context.Background(), model.ReservationPatch{
		RestaurantID:   &restaurantID,
		TableID:        strPtr("t1"),
		CustomerID:     &customerID,
		Date:           &date,
		NumberOfGuests: intPtr(2),
		Status:         &status,
	})
	require.NoError(t, err)
	return r
}

func TestReservationsUpdateTimestamps(t *testing.T) {
	reservations := NewReservations(storage.NewMemory())
	ctx := context.Background()
	created := newReservation(t, reservations, "r1", "c1")

	time.Sleep(2 * time.Millisecond)
	status := model.StatusConfirmed
	updated, err := reservations.Save(ctx, model.ReservationPatch{
		ID:     created.ID,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	// Untouched fields survive the merge.
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.NumberOfGuests, updated.NumberOfGuests)
}

func TestReservationsUpdateUnknownID(t *testing.T) {
	reservations := NewReservations(storage.NewMemory())
	status := model.StatusConfirmed
	_, err := reservations.Save(context.Background(), model.ReservationPatch{
		ID:     "nope",
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReservationsDeleteIdempotent(t *testing.T) {
	reservations := NewReservations(storage.NewMemory())
	ctx := context.Background()
	created := newReservation(t, reservations, "r1", "c1")

	require.NoError(t, reservations.Delete(ctx, created.ID))
	_, ok, err := reservations.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op, not an error.
	require.NoError(t, reservations.Delete(ctx, created.ID))
	require.NoError(t, reservations.Delete(ctx, "never-existed"))
}

func TestReservationsFilters(t *testing.T) {
	reservations := NewReservations(storage.NewMemory())
	ctx := context.Background()
	newReservation(t, reservations, "r1", "c1")
	newReservation(t, reservations, "r1", "c2")
	newReservation(t, reservations, "r2", "c1")

	byRestaurant, err := reservations.ByRestaurant(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 2)

	byCustomer, err := reservations.ByCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)
}
