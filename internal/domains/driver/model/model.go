package model

import "time"

const (
	TableName  = "drivers"
	EntityName = "driver"

	FieldID            = "id"
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldLicenseNumber = "license_number"
	FieldIsAvailable   = "is_available"
	FieldRating        = "rating"
	FieldCreatedAt     = "created_at"
)

type Driver struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Phone         string    `db:"phone"`
	LicenseNumber string    `db:"license_number"`
	IsAvailable   bool      `db:"is_available"`
	Rating        float64   `db:"rating"`
	CreatedAt     time.Time `db:"created_at"`
}
