package response_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"transbook/shared/failure"
	"transbook/transport/http/response"
)

func TestWithError(t *testing.T) {
	t.Run("store failure body carries only the generic message", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.InternalFromString("Failed to fetch bookings"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch bookings"}`, rec.Body.String())
	})

	t.Run("coded failure keeps its status and message", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.NotFound("Booking not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
	})

	t.Run("wrapped failure resolves to the inner code", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, fmt.Errorf("handler: %w", failure.Unauthorized("Invalid credentials")))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Logout successful")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
