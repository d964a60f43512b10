package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVehicleInput defines the data to register a courier vehicle.
type CreateVehicleInput struct {
	DeliverymanID uuid.UUID
	Model         string
	Brand         string
	Plate         string
	Year          string
	Type          entity.VehicleType
}

// UpdateVehicleInput defines the editable vehicle fields.
type UpdateVehicleInput struct {
	Model *string
	Brand *string
	Plate *string
	Year  *string
	Type  *entity.VehicleType
}

// VehicleUsecase defines the interface for courier vehicle management.
type VehicleUsecase interface {
	// CreateVehicle registers a new vehicle for a courier.
	CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error)

	// ListByDeliveryman retrieves a courier's vehicles.
	ListByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]*entity.Vehicle, error)

	// UpdateVehicle applies a partial update. Only the owner may edit.
	UpdateVehicle(ctx context.Context, deliverymanID, vehicleID uuid.UUID, input *UpdateVehicleInput) (*entity.Vehicle, error)

	// DeleteVehicle removes a vehicle. Only the owner may delete.
	DeleteVehicle(ctx context.Context, deliverymanID, vehicleID uuid.UUID) error
}
