package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tavolo/internal/logger"
	"tavolo/internal/model"
	"tavolo/internal/service"
)

// ErrTableTooSmall is returned when a booking exceeds the table's capacity.
var ErrTableTooSmall = errors.New("party exceeds table capacity")

// Bookings orchestrates the multi-entity reservation flows. Steps are
// sequential independent writes: a failure stops the flow but does not roll
// back the steps already committed.
type Bookings struct {
	restaurants  *service.Restaurants
	tables       *service.Tables
	customers    *service.Customers
	reservations *service.Reservations
}

// NewBookings creates the reservation workflow.
func NewBookings(restaurants *service.Restaurants, tables *service.Tables, customers *service.Customers, reservations *service.Reservations) *Bookings {
	return &Bookings{
		restaurants:  restaurants,
		tables:       tables,
		customers:    customers,
		reservations: reservations,
	}
}

// NewReservationInput is the new-reservation form payload. The customer is
// captured inline and reused by email when already known.
type NewReservationInput struct {
	RestaurantID  string    `validate:"required"`
	TableID       string    `validate:"required"`
	Date          time.Time `validate:"required"`
	Guests        int       `validate:"gt=0"`
	CustomerName  string    `validate:"required"`
	CustomerEmail string    `validate:"required,email"`
	CustomerPhone string    `validate:"required"`
	Notes         string
}

// Create books a table: upsert the customer by email, insert a PENDING
// reservation, then mark the table unavailable.
func (b *Bookings) Create(ctx context.Context, in NewReservationInput) (model.Reservation, error) {
	if err := validateStruct(in); err != nil {
		return model.Reservation{}, err
	}

	table, ok, err := b.tables.ByID(ctx, in.TableID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !ok {
		return model.Reservation{}, fmt.Errorf("table %q: %w", in.TableID, service.ErrNotFound)
	}
	if in.Guests > table.Capacity {
		return model.Reservation{}, fmt.Errorf("table seats %d, asked for %d: %w", table.Capacity, in.Guests, ErrTableTooSmall)
	}

	customer, ok, err := b.customers.ByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return model.Reservation{}, err
	}
	if !ok {
		customer, err = b.customers.Save(ctx, model.CustomerPatch{
			Name:  &in.CustomerName,
			Email: &in.CustomerEmail,
			Phone: &in.CustomerPhone,
		})
		if err != nil {
			return model.Reservation{}, fmt.Errorf("failed to create customer: %w", err)
		}
	}

	status := model.StatusPending
	reservation, err := b.reservations.Save(ctx, model.ReservationPatch{
		RestaurantID:   &in.RestaurantID,
		TableID:        &in.TableID,
		CustomerID:     &customer.ID,
		Date:           &in.Date,
		NumberOfGuests: &in.Guests,
		Status:         &status,
		Notes:          &in.Notes,
	})
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}

	if _, err := b.tables.UpdateAvailability(ctx, table.ID, false); err != nil {
		// The reservation is already committed; surface the failure without
		// undoing it.
		logger.L().Error("failed to mark table unavailable",
			zap.String("table", table.ID), zap.Error(err))
		return model.Reservation{}, err
	}

	logger.L().Info("reservation created",
		zap.String("reservation", reservation.ID),
		zap.String("restaurant", in.RestaurantID),
		zap.String("customer", customer.ID))
	return reservation, nil
}

// UpdateStatus moves a reservation through its lifecycle. Cancelling frees
// the table again.
func (b *Bookings) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (model.Reservation, error) {
	reservation, err := b.reservations.Save(ctx, model.ReservationPatch{
		ID:     id,
		Status: &status,
	})
	if err != nil {
		return model.Reservation{}, err
	}

	if status == model.StatusCancelled {
		if _, err := b.tables.UpdateAvailability(ctx, reservation.TableID, true); err != nil {
			logger.L().Error("failed to free table after cancellation",
				zap.String("table", reservation.TableID), zap.Error(err))
			return model.Reservation{}, err
		}
	}

	logger.L().Info("reservation status changed",
		zap.String("reservation", id), zap.String("status", string(status)))
	return reservation, nil
}
