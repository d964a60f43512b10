package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingLocation is a courier position report.
type TrackingLocation struct {
	Latitude  float64
	Longitude float64
}

// UpdateTrackingInput defines the mutable tracking fields. Nil pointers leave
// the stored value untouched. Status changes must follow the delivery state
// machine; invalid transitions are rejected.
type UpdateTrackingInput struct {
	CourierID     *uuid.UUID
	Status        *entity.TrackingStatus
	Location      *TrackingLocation
	EstimatedTime *string
}

// TrackingUsecase defines the interface for delivery-tracking use cases.
type TrackingUsecase interface {
	// CreateTracking creates the tracking record of a paid purchase. Exactly
	// one record exists per purchase.
	CreateTracking(ctx context.Context, purchaseID uuid.UUID, courierID *uuid.UUID, estimatedTime *string) (*entity.Tracking, error)

	// GetInfo retrieves a tracking record with its purchase and courier.
	GetInfo(ctx context.Context, trackingID uuid.UUID) (*entity.Tracking, error)

	// GetLastByBuyer retrieves the most recently updated tracking record of
	// the buyer's purchases, or nil when the buyer has none.
	GetLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Tracking, error)

	// UpdateTracking applies a partial update on behalf of a courier and
	// publishes a tracking event. Once a delivery is assigned, only the
	// assigned courier may update it.
	UpdateTracking(ctx context.Context, courierID, trackingID uuid.UUID, input *UpdateTrackingInput) (*entity.Tracking, error)

	// ListByCourier retrieves the deliveries assigned to a courier.
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Tracking, error)
}
