package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for tracking persistence.
var (
	// ErrTrackingNotFound is returned when a tracking record is not found.
	ErrTrackingNotFound = errors.New("tracking not found")
	// ErrTrackingExists is returned when a purchase already has a tracking row.
	ErrTrackingExists = errors.New("tracking already exists for this purchase")
)

// TrackingRepository defines the interface for delivery-tracking persistence.
type TrackingRepository interface {
	// Create persists a new tracking record. Returns ErrTrackingExists when
	// the purchase already has one (purchase_id is unique).
	Create(ctx context.Context, tracking *entity.Tracking) error

	// FindByID retrieves a tracking record with its purchase and courier joined.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracking, error)

	// FindByPurchase retrieves the tracking record of a purchase.
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Tracking, error)

	// FindLastByBuyer retrieves the most recently updated tracking record
	// among the buyer's purchases, or ErrTrackingNotFound when none exists.
	FindLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Tracking, error)

	// FindByCourier retrieves the tracking records assigned to a courier,
	// newest first.
	FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Tracking, error)

	// Update persists courier assignment, status, location and estimate changes.
	Update(ctx context.Context, tracking *entity.Tracking) error
}
