package model

import "time"

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldDate      = "reservation_date"
	FieldTime      = "reservation_time"
	FieldGuests    = "guests"
	FieldMessage   = "message"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

// Status is the closed reservation lifecycle: pending on creation, confirmed
// by the admin confirm operation. The transition is one-directional and
// confirming twice is harmless.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusConfirmed:
		return Status(value), true
	default:
		return "", false
	}
}

type Reservation struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Date      time.Time `db:"reservation_date"`
	Time      string    `db:"reservation_time"`
	Guests    int       `db:"guests"`
	Message   string    `db:"message"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
