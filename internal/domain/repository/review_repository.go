package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProduct retrieves the reviews of a product, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindByStore retrieves the reviews of a store, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error)

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
