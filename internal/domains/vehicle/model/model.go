package model

import "time"

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID          = "id"
	FieldName        = "name"
	FieldVehicleType = "vehicle_type"
	FieldCapacity    = "capacity"
	FieldPricePerKM  = "price_per_km"
	FieldIsAvailable = "is_available"
	FieldCreatedAt   = "created_at"
)

type Vehicle struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	VehicleType string    `db:"vehicle_type"`
	Capacity    int       `db:"capacity"`
	PricePerKM  float64   `db:"price_per_km"`
	Description *string   `db:"description"`
	IsAvailable bool      `db:"is_available"`
	CreatedAt   time.Time `db:"created_at"`
}
