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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindBySeller retrieves every product owned by a seller, newest first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by seller")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByCategory retrieves every available product in a category.
func (repo *productRepository) FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category = ? AND available = ?", string(category), true).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return toProductDomainSlice(productModels), nil
}

// FindAvailable retrieves every product currently offered for sale.
func (repo *productRepository) FindAvailable(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available products")
	}

	return toProductDomainSlice(productModels), nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"amount":      product.Amount,
			"image_url":   product.ImageURL,
			"available":   product.Available,
			"category":    string(product.Category),
			"measure":     string(product.Measure),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Amount:      data.Amount,
		ImageURL:    data.ImageURL,
		Available:   data.Available,
		Category:    entity.Category(data.Category),
		Measure:     entity.Measure(data.Measure),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Amount:      data.Amount,
		ImageURL:    data.ImageURL,
		Available:   data.Available,
		Category:    string(data.Category),
		Measure:     string(data.Measure),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
