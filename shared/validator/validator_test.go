package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"transbook/shared/failure"
	"transbook/shared/validator"
)

type loginBody struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"email":"user@example.com","password":"user123","role":"user"}`,
		},
		{
			name:    "missing field",
			body:    `{"email":"user@example.com","password":"user123"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data loginBody
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "user@example.com", data.Email)
		})
	}
}

type passwordBody struct {
	Password string `json:"password" validate:"required,userpassword"`
}

func TestValidate_PasswordRule(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "compliant password", body: `{"password":"Abc123"}`},
		{name: "no digit", body: `{"password":"Abcdef"}`, wantErr: true},
		{name: "no uppercase", body: `{"password":"abc123"}`, wantErr: true},
		{name: "too short", body: `{"password":"Ab1"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data passwordBody
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
