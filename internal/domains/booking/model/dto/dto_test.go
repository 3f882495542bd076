package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"transbook/internal/domains/booking/model"
	"transbook/internal/domains/booking/model/dto"
	"transbook/shared/constant"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		UserID:          json.Number("5"),
		PickupLocation:  "Station Rd 1",
		DropoffLocation: "Airport Terminal 2",
		BookingDate:     "2026-09-01T10:30",
		Passengers:      json.Number("3"),
	}
}

func TestCreateBookingRequest_ToModel_DateLayouts(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC3339",
			date: "2026-09-01T10:30:00Z",
			want: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "datetime-local form value",
			date: "2026-09-01T10:30",
			want: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "bare date",
			date: "2026-09-01",
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "free text",
			date:    "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.BookingDate = tt.date

			booking, err := req.ToModel()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, booking.BookingDate.Equal(tt.want))
		})
	}
}

func TestCreateBookingRequest_PassengersValue(t *testing.T) {
	tests := []struct {
		name       string
		passengers json.Number
		want       int
		wantErr    bool
	}{
		{name: "integer", passengers: json.Number("4"), want: 4},
		{name: "fractional count is truncated", passengers: json.Number("2.9"), want: 2},
		{name: "zero", passengers: json.Number("0"), wantErr: true},
		{name: "negative", passengers: json.Number("-3"), wantErr: true},
		{name: "not a number", passengers: json.Number("abc"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Passengers = tt.passengers

			got, err := req.PassengersValue()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateBookingRequest_Decode(t *testing.T) {
	t.Run("numeric strings from the browser form are accepted", func(t *testing.T) {
		body := `{"user_id":"5","pickup_location":"A","dropoff_location":"B","booking_date":"2026-09-01","passengers":"2"}`

		var req dto.CreateBookingRequest
		assert.NoError(t, json.Unmarshal([]byte(body), &req))

		passengers, err := req.PassengersValue()
		assert.NoError(t, err)
		assert.Equal(t, 2, passengers)

		userID, err := req.UserIDValue()
		assert.NoError(t, err)
		assert.Equal(t, int64(5), userID)
	})

	t.Run("non-numeric passenger string fails at decode", func(t *testing.T) {
		body := `{"user_id":"5","pickup_location":"A","dropoff_location":"B","booking_date":"2026-09-01","passengers":"abc"}`

		var req dto.CreateBookingRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req))
	})
}

func TestCreateBookingRequest_ToModel_StatusIsPending(t *testing.T) {
	req := validRequest()

	booking, err := req.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, constant.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(5), booking.UserID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	driverName := "Max Driver"
	vehicleName := "City Bus 7"
	bookingDate := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	m := model.Booking{
		ID:            9,
		UserID:        5,
		BookingDate:   bookingDate,
		Passengers:    3,
		Status:        constant.BookingStatusConfirmed,
		CustomerName:  "Jane Roe",
		CustomerEmail: "jane@example.com",
		DriverName:    &driverName,
		VehicleName:   &vehicleName,
	}

	var res dto.BookingResponse
	res.FromModel(m)

	assert.Equal(t, int64(9), res.ID)
	assert.Equal(t, bookingDate.Format(constant.DateFormat), res.BookingDate)
	assert.Equal(t, "Jane Roe", res.CustomerName)
	assert.Equal(t, &driverName, res.DriverName)
	assert.Equal(t, &vehicleName, res.VehicleName)
}
