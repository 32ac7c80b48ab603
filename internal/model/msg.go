package model

// Bubble Tea message types

// ErrorMsg carries a failure to the root model for display.
type ErrorMsg struct {
	Err error
}

// AuthenticatedMsg is sent after a successful login or registration.
type AuthenticatedMsg struct {
	User User
}

// SessionRestoredMsg is sent at startup with the persisted session, if any.
type SessionRestoredMsg struct {
	User  User
	Found bool
}

// LoggedOutMsg is sent after the session is cleared.
type LoggedOutMsg struct{}

// RestaurantsLoadedMsg is sent when the restaurant list is loaded.
type RestaurantsLoadedMsg struct {
	Restaurants []Restaurant
}

// RestaurantSavedMsg is sent when a restaurant is successfully saved.
type RestaurantSavedMsg struct {
	Restaurant Restaurant
}

// RestaurantDeletedMsg is sent when a restaurant is deleted.
type RestaurantDeletedMsg struct {
	ID string
}

// RestaurantDetailLoadedMsg is sent when a restaurant and its tables load.
type RestaurantDetailLoadedMsg struct {
	Restaurant Restaurant
	Tables     []Table
}

// TablesLoadedMsg is sent when a restaurant's tables are loaded.
type TablesLoadedMsg struct {
	Restaurant Restaurant
	Tables     []Table
}

// TableSavedMsg is sent when a table is successfully saved.
type TableSavedMsg struct {
	Table Table
}

// TableDeletedMsg is sent when a table is deleted.
type TableDeletedMsg struct {
	ID string
}

// ReservationRow joins a reservation with its display context.
type ReservationRow struct {
	Reservation    Reservation
	RestaurantName string
	CustomerName   string
	TableNumber    int
}

// ReservationsLoadedMsg is sent when the reservation list is loaded.
type ReservationsLoadedMsg struct {
	Rows []ReservationRow
}

// ReservationSavedMsg is sent when a reservation is created or its status
// changes.
type ReservationSavedMsg struct {
	Reservation Reservation
}

// FormCancelledMsg is sent when a form is dismissed without saving.
type FormCancelledMsg struct{}

// Screen identifies the active screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenRestaurants
	ScreenRestaurantForm
	ScreenRestaurantDetail
	ScreenTables
	ScreenReservations
	ScreenReservationForm
)

// Mode distinguishes list navigation from form editing.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
