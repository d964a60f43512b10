package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data to create a review. Exactly one of
// ProductID / StoreID must be set.
type CreateReviewInput struct {
	UserID    uuid.UUID
	ProductID *uuid.UUID
	StoreID   *uuid.UUID
	Rating    int
	Comment   string
}

// UpdateReviewInput defines the editable review fields.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewUsecase defines the interface for product and store reviews.
type ReviewUsecase interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// ListByProduct retrieves a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// ListByStore retrieves a store's reviews, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview applies a partial update. Only the author may edit.
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review. Only the author may delete.
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
