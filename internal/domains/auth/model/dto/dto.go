package dto

import (
	"time"

	"transbook/internal/domains/user/model"
	"transbook/shared/constant"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"omitempty"`
	Password string `json:"password" validate:"required,userpassword"`
}

// ToModel builds the user row for registration. The credential is stored
// exactly as supplied.
func (r *RegisterRequest) ToModel() model.User {
	var phone *string
	if r.Phone != "" {
		phone = &r.Phone
	}

	return model.User{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     phone,
		Password:  r.Password,
		Role:      constant.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// UserSummary is the client-held identity record: the browser stores it as
// plain JSON and the server attaches no session to it.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

func (r *LoginResponse) FromModel(m model.User, message string) {
	r.Message = message
	r.User = UserSummary{
		ID:    m.ID,
		Email: m.Email,
		Name:  m.Name,
		Role:  m.Role,
	}
}
