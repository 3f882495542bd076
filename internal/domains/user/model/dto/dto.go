package dto

import (
	"transbook/internal/domains/user/model"
	"transbook/shared/constant"
)

// UserResponse is the listing shape for GET /api/users. The credential
// column is never exposed.
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Role = m.Role
	r.IsActive = m.IsActive
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.User) []UserResponse {
	responses := make([]UserResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
