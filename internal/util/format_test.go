package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tavolo/internal/model"
)

func TestFormatDateHuman(t *testing.T) {
	assert.Equal(t, "—", FormatDateHuman(time.Time{}))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 19, 0, 0, 0, time.Local)
	assert.Equal(t, "Today 19:00", FormatDateHuman(today))
	assert.Equal(t, "Tomorrow 19:00", FormatDateHuman(today.AddDate(0, 0, 1)))

	farOut := today.AddDate(0, 0, 30)
	assert.Equal(t, farOut.Format("Jan 02 15:04"), FormatDateHuman(farOut))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "pending", FormatStatus(model.StatusPending))
	assert.Equal(t, "confirmed", FormatStatus(model.StatusConfirmed))
	assert.Equal(t, "cancelled", FormatStatus(model.StatusCancelled))
	assert.Equal(t, "completed", FormatStatus(model.StatusCompleted))
	assert.Equal(t, "WEIRD", FormatStatus(model.ReservationStatus("WEIRD")))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "free", FormatAvailability(true))
	assert.Equal(t, "booked", FormatAvailability(false))
	assert.Equal(t, "4p", FormatGuests(4))
	assert.Equal(t, "owner", FormatRole(model.RoleRestaurantOwner))
	assert.Equal(t, "customer", FormatRole(model.RoleCustomer))
}
