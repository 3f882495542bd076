package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"transbook/internal/domains/booking/model"
	"transbook/shared/constant"
	"transbook/shared/failure"
)

// booking_date is accepted as sent by the booking form (datetime-local),
// as RFC3339, or as a bare date.
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// CreateBookingRequest accepts user_id and passengers as JSON numbers or
// numeric strings; the browser form submits strings.
type CreateBookingRequest struct {
	UserID          json.Number `json:"user_id"          validate:"required"`
	PickupLocation  string      `json:"pickup_location"  validate:"required"`
	DropoffLocation string      `json:"dropoff_location" validate:"required"`
	BookingDate     string      `json:"booking_date"     validate:"required"`
	Passengers      json.Number `json:"passengers"       validate:"required"`
}

// UserIDValue parses the owning user reference.
func (c *CreateBookingRequest) UserIDValue() (int64, error) {
	id, err := strconv.ParseInt(c.UserID.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("user_id must be a positive number") //nolint:wrapcheck
	}

	return id, nil
}

// PassengersValue enforces the passenger-count rule: the value must parse as
// a finite number greater than zero.
func (c *CreateBookingRequest) PassengersValue() (int, error) {
	passengers, err := c.Passengers.Float64()
	if err != nil || math.IsInf(passengers, 0) || math.IsNaN(passengers) || passengers <= 0 {
		return 0, failure.BadRequestFromString("Passengers must be a positive number") //nolint:wrapcheck
	}

	return int(passengers), nil
}

// ToModel builds the booking row. Status is always pending at creation.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	userID, err := c.UserIDValue()
	if err != nil {
		return model.Booking{}, err
	}

	passengers, err := c.PassengersValue()
	if err != nil {
		return model.Booking{}, err
	}

	var bookingDate time.Time

	parsed := false

	for _, layout := range bookingDateLayouts {
		if bookingDate, err = time.Parse(layout, c.BookingDate); err == nil {
			parsed = true

			break
		}
	}

	if !parsed {
		return model.Booking{}, failure.BadRequestFromString("booking_date is not a valid date") //nolint:wrapcheck
	}

	return model.Booking{
		UserID:          userID,
		PickupLocation:  c.PickupLocation,
		DropoffLocation: c.DropoffLocation,
		BookingDate:     bookingDate,
		Passengers:      passengers,
		Status:          constant.BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// UpdateBookingStatusRequest carries the single field the update route is
// scoped to. Any non-empty string is accepted; the four conventional values
// (pending, confirmed, completed, cancelled) are not enforced.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	BookingDate     string  `json:"booking_date"`
	Passengers      int     `json:"passengers"`
	Status          string  `json:"status"`
	DriverID        *int64  `json:"driver_id"`
	VehicleID       *int64  `json:"vehicle_id"`
	CreatedAt       string  `json:"created_at"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
	DriverName      *string `json:"driver_name"`
	VehicleName     *string `json:"vehicle_name"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.PickupLocation = m.PickupLocation
	r.DropoffLocation = m.DropoffLocation
	r.BookingDate = m.BookingDate.Format(constant.DateFormat)
	r.Passengers = m.Passengers
	r.Status = m.Status
	r.DriverID = m.DriverID
	r.VehicleID = m.VehicleID
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
	r.CustomerName = m.CustomerName
	r.CustomerEmail = m.CustomerEmail
	r.CustomerPhone = m.CustomerPhone
	r.DriverName = m.DriverName
	r.VehicleName = m.VehicleName
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
