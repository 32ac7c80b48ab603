package model

import "time"

// UserRole distinguishes diners from venue owners.
type UserRole string

const (
	RoleCustomer        UserRole = "CUSTOMER"
	RoleRestaurantOwner UserRole = "RESTAURANT_OWNER"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// Meta carries the identity and bookkeeping fields shared by every stored
// entity. The fields inline into the enclosing record's JSON.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityMeta exposes the shared fields to the collection layer.
func (m *Meta) EntityMeta() *Meta { return m }

// User is an account that can sign in. Passwords are stored as entered;
// there is no hashing in this app.
type User struct {
	Meta
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// Restaurant is a venue owned by a User.
type Restaurant struct {
	Meta
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	OwnerID string `json:"ownerId"`
}

// Table is a bookable table within a restaurant. Number is unique within a
// restaurant by convention only; nothing enforces it.
type Table struct {
	Meta
	RestaurantID string `json:"restaurantId"`
	Number       int    `json:"number"`
	Capacity     int    `json:"capacity"`
	IsAvailable  bool   `json:"isAvailable"`
}

// Customer is a diner captured ad hoc at booking time. Customers are not
// linked to User accounts.
type Customer struct {
	Meta
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Reservation books one table at one restaurant for one customer.
type Reservation struct {
	Meta
	RestaurantID   string            `json:"restaurantId"`
	TableID        string            `json:"tableId"`
	CustomerID     string            `json:"customerId"`
	Date           time.Time         `json:"date"`
	NumberOfGuests int               `json:"numberOfGuests"`
	Status         ReservationStatus `json:"status"`
	Notes          string            `json:"notes,omitempty"`
}

// Patch types feed the single save path of each collection service. A nil
// field keeps the stored value on update and zeroes out on create; an empty
// ID means create.

// UserPatch is a partial User for save.
type UserPatch struct {
	ID       string
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Role     *UserRole
}

// RestaurantPatch is a partial Restaurant for save.
type RestaurantPatch struct {
	ID      string
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	OwnerID *string
}

// TablePatch is a partial Table for save.
type TablePatch struct {
	ID           string
	RestaurantID *string
	Number       *int
	Capacity     *int
	IsAvailable  *bool
}

// CustomerPatch is a partial Customer for save.
type CustomerPatch struct {
	ID    string
	Name  *string
	Email *string
	Phone *string
}

// ReservationPatch is a partial Reservation for save.
type ReservationPatch struct {
	ID             string
	RestaurantID   *string
	TableID        *string
	CustomerID     *string
	Date           *time.Time
	NumberOfGuests *int
	Status         *ReservationStatus
	Notes          *string
}
