package models

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type Vehicle struct {
	ID            uuid.UUID           `json:"id"`
	VehicleNumber string              `json:"vehicle_number"`
	Model         string              `json:"model"`
	Type          types.VehicleType   `json:"type"`
	Status        types.VehicleStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at,omitzero"`
}
