package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldPickupLocation  = "pickup_location"
	FieldDropoffLocation = "dropoff_location"
	FieldBookingDate     = "booking_date"
	FieldPassengers      = "passengers"
	FieldStatus          = "status"
	FieldDriverID        = "driver_id"
	FieldVehicleID       = "vehicle_id"
)

// Booking mirrors the bookings table plus the customer, driver, and vehicle
// columns pulled in by the join. Joined fields carry `table`/`column` tags
// so the generic repository selects them without treating them as insert
// columns.
type Booking struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	PickupLocation  string    `db:"pickup_location"`
	DropoffLocation string    `db:"dropoff_location"`
	BookingDate     time.Time `db:"booking_date"`
	Passengers      int       `db:"passengers"`
	Status          string    `db:"status"`
	DriverID        *int64    `db:"driver_id"`
	VehicleID       *int64    `db:"vehicle_id"`
	CreatedAt       time.Time `db:"created_at"`

	CustomerName  string  `db:"customer_name"  table:"users"    column:"name"`
	CustomerEmail string  `db:"customer_email" table:"users"    column:"email"`
	CustomerPhone *string `db:"customer_phone" table:"users"    column:"phone"`
	DriverName    *string `db:"driver_name"    table:"drivers"  column:"name"`
	VehicleName   *string `db:"vehicle_name"   table:"vehicles" column:"name"`
}

func (Booking) GetJoinQuery() string {
	return `JOIN users ON bookings.user_id = users.id
		LEFT JOIN drivers ON bookings.driver_id = drivers.id
		LEFT JOIN vehicles ON bookings.vehicle_id = vehicles.id`
}
