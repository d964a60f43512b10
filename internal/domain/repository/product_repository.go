package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySeller retrieves every product owned by a seller, newest first.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// FindByCategory retrieves every available product in a category.
	FindByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// FindAvailable retrieves every product currently offered for sale.
	FindAvailable(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product row by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
