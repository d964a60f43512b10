package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview persists a new review after validating its target and rating.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if (input.ProductID == nil) == (input.StoreID == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review must target exactly one product or store")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	review := &entity.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		StoreID:   input.StoreID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// ListByProduct retrieves a product's reviews, newest first.
func (srv *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	return reviews, nil
}

// ListByStore retrieves a store's reviews, newest first.
func (srv *reviewService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by store")
	}

	return reviews, nil
}

// UpdateReview applies a partial update. Only the author may edit.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := srv.loadOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review. Only the author may delete.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := srv.loadOwnedReview(ctx, userID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) loadOwnedReview(ctx context.Context, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	if review.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return review, nil
}
