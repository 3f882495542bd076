package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transbook/internal/domains/auth/model/dto"
	"transbook/shared/constant"
	"transbook/shared/validator"
)

func TestRegisterRequest_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Passw0rd", wantErr: false},
		{name: "minimum length with all classes", password: "Abc123", wantErr: false},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "missing uppercase", password: "passw0rd", wantErr: true},
		{name: "missing lowercase", password: "PASSW0RD", wantErr: true},
		{name: "missing digit", password: "Password", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RegisterRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: tt.password,
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_ToModel(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Phone:    "0812345678",
		Password: "Passw0rd",
	}

	user := req.ToModel()

	assert.Equal(t, req.Name, user.Name)
	assert.Equal(t, req.Email, user.Email)
	assert.NotNil(t, user.Phone)
	assert.Equal(t, req.Phone, *user.Phone)
	assert.Equal(t, req.Password, user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.True(t, user.IsActive)
}

func TestRegisterRequest_ToModel_EmptyPhone(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Passw0rd",
	}

	user := req.ToModel()

	assert.Nil(t, user.Phone)
}
