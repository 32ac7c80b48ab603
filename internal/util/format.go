package util

import (
	"strconv"
	"time"

	"tavolo/internal/model"
)

// FormatDateTime formats a reservation timestamp for display.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 02, 2006 15:04")
}

// FormatDateHuman formats a timestamp with humanized relative display.
// "Today 19:00", "Tomorrow 20:30", otherwise "Jan 02 15:04".
func FormatDateHuman(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	t = t.Local()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "Today " + t.Format("15:04")
	case 1:
		return "Tomorrow " + t.Format("15:04")
	default:
		return t.Format("Jan 02 15:04")
	}
}

// FormatStatus renders a reservation status for list display.
func FormatStatus(s model.ReservationStatus) string {
	switch s {
	case model.StatusPending:
		return "pending"
	case model.StatusConfirmed:
		return "confirmed"
	case model.StatusCancelled:
		return "cancelled"
	case model.StatusCompleted:
		return "completed"
	default:
		return string(s)
	}
}

// FormatAvailability renders a table's availability flag.
func FormatAvailability(available bool) string {
	if available {
		return "free"
	}
	return "booked"
}

// FormatGuests renders a party size as "4p".
func FormatGuests(n int) string {
	return strconv.Itoa(n) + "p"
}

// FormatRole renders a user role for the header.
func FormatRole(r model.UserRole) string {
	switch r {
	case model.RoleRestaurantOwner:
		return "owner"
	case model.RoleCustomer:
		return "customer"
	default:
		return string(r)
	}
}
