package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// ErrVehicleNotFound is returned when a vehicle is not found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines the interface for courier vehicle persistence.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// FindByID retrieves a vehicle by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindByDeliveryman retrieves every vehicle registered by a courier.
	FindByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]*entity.Vehicle, error)

	// Update modifies an existing vehicle.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// Delete removes a vehicle by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
