package model

import "time"

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldCreatedAt = "created_at"
)

// Contact is an inbound website message. Rows are immutable once stored.
type Contact struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
