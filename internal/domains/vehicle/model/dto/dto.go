package dto

import (
	"time"

	"transbook/internal/domains/vehicle/model"
	"transbook/shared/constant"
)

type CreateVehicleRequest struct {
	Name        string  `json:"name"         validate:"required"`
	VehicleType string  `json:"vehicle_type" validate:"required"`
	Capacity    int     `json:"capacity"     validate:"required,gt=0"`
	PricePerKM  float64 `json:"price_per_km" validate:"required,gt=0"`
	Description string  `json:"description"  validate:"omitempty"`
	IsAvailable *bool   `json:"is_available" validate:"omitempty"`
}

// ToModel builds the vehicle row; availability defaults to true when the
// field is omitted.
func (c *CreateVehicleRequest) ToModel() model.Vehicle {
	var description *string
	if c.Description != "" {
		description = &c.Description
	}

	isAvailable := true
	if c.IsAvailable != nil {
		isAvailable = *c.IsAvailable
	}

	return model.Vehicle{
		Name:        c.Name,
		VehicleType: c.VehicleType,
		Capacity:    c.Capacity,
		PricePerKM:  c.PricePerKM,
		Description: description,
		IsAvailable: isAvailable,
		CreatedAt:   time.Now().UTC(),
	}
}

// UpdateVehicleRequest is scoped to the availability flag; any other fields
// in the request body are ignored.
type UpdateVehicleRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type CreateVehicleResponse struct {
	Message   string `json:"message"`
	VehicleID int64  `json:"vehicleId"`
}

type VehicleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	VehicleType string  `json:"vehicle_type"`
	Capacity    int     `json:"capacity"`
	PricePerKM  float64 `json:"price_per_km"`
	Description *string `json:"description"`
	IsAvailable bool    `json:"is_available"`
	CreatedAt   string  `json:"created_at"`
}

func (r *VehicleResponse) FromModel(m model.Vehicle) {
	r.ID = m.ID
	r.Name = m.Name
	r.VehicleType = m.VehicleType
	r.Capacity = m.Capacity
	r.PricePerKM = m.PricePerKM
	r.Description = m.Description
	r.IsAvailable = m.IsAvailable
	r.CreatedAt = m.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
