package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	mockRepo "feira/internal/mocks/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		reviewRepo: reviewRepo,
	}
}

func TestReviewService_CreateReview_ForProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.CreateReviewInput{
		UserID:    uuid.New(),
		ProductID: &productID,
		Rating:    5,
		Comment:   "Muito fresco, chegou rápido",
	}

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.ProductID != nil && *review.ProductID == productID &&
				review.StoreID == nil && review.Rating == 5
		})).
		Return(nil)

	review, err := fx.service.CreateReview(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_RejectsDoubleTarget(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	storeID := uuid.New()
	input := &usecase.CreateReviewInput{
		UserID:    uuid.New(),
		ProductID: &productID,
		StoreID:   &storeID,
		Rating:    4,
	}

	_, err := fx.service.CreateReview(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_RejectsMissingTarget(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		UserID: uuid.New(),
		Rating: 4,
	}

	_, err := fx.service.CreateReview(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_RejectsOutOfRangeRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.CreateReviewInput{
		UserID:  uuid.New(),
		StoreID: &storeID,
		Rating:  6,
	}

	_, err := fx.service.CreateReview(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_UpdateReview_OnlyAuthorMayEdit(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	stored := &entity.Review{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Rating: 3,
	}

	newRating := 4
	input := &usecase.UpdateReviewInput{Rating: &newRating}

	fx.reviewRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateReview(ctx, uuid.New(), stored.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	authorID := uuid.New()
	stored := &entity.Review{
		ID:      uuid.New(),
		UserID:  authorID,
		Rating:  3,
		Comment: "Bom",
	}

	newRating := 5
	input := &usecase.UpdateReviewInput{Rating: &newRating}

	fx.reviewRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.Rating == 5 && review.Comment == "Bom"
		})).
		Return(nil)

	review, err := fx.service.UpdateReview(ctx, authorID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_DeleteReview_OnlyAuthorMayDelete(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	stored := &entity.Review{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}

	fx.reviewRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	err := fx.service.DeleteReview(ctx, uuid.New(), stored.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
