package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType is the closed set of vehicles a courier can register.
type VehicleType string

const (
	VehicleCarro     VehicleType = "carro"
	VehicleBicicleta VehicleType = "bicicleta"
	VehicleMoto      VehicleType = "moto"
)

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCarro, VehicleBicicleta, VehicleMoto:
		return true
	default:
		return false
	}
}

// Vehicle is a courier's registered delivery vehicle.
type Vehicle struct {
	ID            uuid.UUID
	DeliverymanID uuid.UUID // The owning courier profile.
	Model         string
	Brand         string
	Plate         string
	Year          string
	Type          VehicleType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
