package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid review target reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid rating")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByProduct retrieves the reviews of a product, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindByStore retrieves the reviews of a store, newest first.
func (repo *reviewRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by store")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// Update modifies an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review by its ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		StoreID:   data.StoreID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toReviewDomainSlice(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		StoreID:   data.StoreID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
