package entity

import "time"

// Reservation statuses. Only PENDING is queried by the admin dashboard,
// the rest exist so the enum round-trips through the database.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

type Reservation struct {
	ID         string
	Status     string
	ClientID   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
	CreatedAt  time.Time
}

// PendingReservation is the admin-dashboard projection: a PENDING
// reservation enriched with the client identity and the booked room types.
type PendingReservation struct {
	Reservation
	ClientName  string
	ClientEmail string
	RoomTypes   []string
}
