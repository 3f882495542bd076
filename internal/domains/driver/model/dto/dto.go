package dto

import (
	"transbook/internal/domains/driver/model"
	"transbook/shared/constant"
)

type DriverResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	IsAvailable   bool    `json:"is_available"`
	Rating        float64 `json:"rating"`
	CreatedAt     string  `json:"created_at"`
}

func (r *DriverResponse) FromModel(m model.Driver) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.LicenseNumber = m.LicenseNumber
	r.IsAvailable = m.IsAvailable
	r.Rating = m.Rating
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Driver) []DriverResponse {
	responses := make([]DriverResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
