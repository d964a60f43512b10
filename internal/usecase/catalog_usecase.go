package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductImage carries the raw bytes of an uploaded product image.
type ProductImage struct {
	Data        []byte
	ContentType string
}

// CreateProductInput defines the data required to create a catalog entry.
// The image is optional; products without one simply have no image URL.
type CreateProductInput struct {
	SellerID    uuid.UUID
	Name        string
	Description string
	Price       *float64
	Amount      int
	Available   bool
	Category    entity.Category
	Measure     entity.Measure
	Image       *ProductImage
}

// UpdateProductInput defines the editable product fields. Nil pointers leave
// the stored value untouched. A new image replaces the stored one.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Amount      *int
	Available   *bool
	Category    *entity.Category
	Measure     *entity.Measure
	Image       *ProductImage
}

// CatalogUsecase defines the interface for product catalog use cases.
// Mutations are restricted to the owning seller; reads are public.
type CatalogUsecase interface {
	// CreateProduct creates a product, uploading its image first. When the
	// row insert fails the uploaded blob is removed again.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListSellerProducts retrieves a seller's products, newest first.
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// ListByCategory retrieves the available products of one category.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// ListAvailable retrieves every product currently offered for sale.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct applies a partial update to a product owned by sellerID.
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product owned by sellerID together with its
	// stored image. Blob removal is best-effort.
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}
