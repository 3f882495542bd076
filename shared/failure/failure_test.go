package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"transbook/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("malformed body")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "malformed body",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("Passengers must be a positive number"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Passengers must be a positive number",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("Invalid credentials"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "not found",
			err:      failure.NotFound("Booking not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("Email already registered"),
			wantCode: http.StatusConflict,
			wantMsg:  "Email already registered",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("connection refused")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "connection refused",
		},
		{
			name:     "internal error from string",
			err:      failure.InternalFromString("Failed to fetch bookings"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to fetch bookings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("handling request: %w", failure.NotFound("Booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGetCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
}

func TestNilErrorsReturnNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
