package dto

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

type VehicleRequest struct {
	VehicleNumber string `json:"vehicleNumber"`
	Model         string `json:"model"`
	Type          string `json:"type"`
	Status        string `json:"status"`
}

func (r *VehicleRequest) Validate(v *validator.Validator) {
	v.Check(r.VehicleNumber != "", "vehicleNumber", "must be provided")
	v.Check(len(r.VehicleNumber) <= 32, "vehicleNumber", "must not be more than 32 characters long")

	v.Check(r.Model != "", "model", "must be provided")
	v.Check(len(r.Model) <= 255, "model", "must not be more than 255 characters long")

	v.Check(r.Type != "", "type", "must be provided")
	if r.Type != "" {
		v.Check(validator.PermittedValue(r.Type,
			string(types.VehicleCar),
			string(types.VehicleBike),
			string(types.VehicleScooter),
		), "type", "must be one of car, bike, or scooter")
	}

	if r.Status != "" {
		v.Check(validator.PermittedValue(r.Status,
			string(types.VehicleAvailable),
			string(types.VehicleInUse),
			string(types.VehicleMaintenance),
		), "status", "must be one of available, in_use, or maintenance")
	}
}

func (r *VehicleRequest) ToModel() *models.Vehicle {
	status := types.VehicleStatus(r.Status)
	if status == "" {
		status = types.VehicleAvailable
	}

	return &models.Vehicle{
		VehicleNumber: r.VehicleNumber,
		Model:         r.Model,
		Type:          types.VehicleType(r.Type),
		Status:        status,
	}
}

type VehicleResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleNumber string    `json:"vehicleNumber"`
	Model         string    `json:"model"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitzero"`
}

func NewVehicleResponse(v *models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		VehicleNumber: v.VehicleNumber,
		Model:         v.Model,
		Type:          string(v.Type),
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func NewVehicleListResponse(vehicles []*models.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, NewVehicleResponse(v))
	}
	return out
}
