package model

import "time"

// Reservation records a table request made through the website.
//
// Fields:
//
//	ID        – random identifier assigned at creation.
//	Date      – requested day, YYYY-MM-DD.
//	Time      – requested time slot as entered (e.g. "19:30").
//	Guests    – party size as entered (e.g. "4", "8+").
//	Status    – pending, confirmed or cancelled.
//	CreatedAt – creation timestamp (UTC).
type Reservation struct {
	ID        string    `json:"id" bson:"id"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Guests    string    `json:"guests" bson:"guests"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ReservationInput is the public creation payload.
type ReservationInput struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Guests    string `json:"guests" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message"`
}

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// ReservationStatuses lists every accepted reservation status. Any of them
// may follow any other.
var ReservationStatuses = []string{ReservationPending, ReservationConfirmed, ReservationCancelled}

// FullName joins first and last name the way confirmations display it.
func (r Reservation) FullName() string {
	return r.FirstName + " " + r.LastName
}
