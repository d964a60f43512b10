package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct creates a catalog entry. The image blob is uploaded first;
// when the row insert fails afterwards, the blob is removed again so no
// orphaned objects accumulate in the bucket.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category " + string(input.Category))
	}
	if !input.Measure.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown measure " + string(input.Measure))
	}

	var imageURL, imageKey string
	if input.Image != nil {
		key := imageKeyFor(input.Image.ContentType)

		url, err := srv.imageStorage.Upload(ctx, key, input.Image.Data, input.Image.ContentType)
		if err != nil {
			srv.log(ctx).Error("Failed to upload product image", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, "failed to upload product image")
		}
		imageURL, imageKey = url, key
	}

	product := &entity.Product{
		SellerID:    input.SellerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Amount:      input.Amount,
		ImageURL:    imageURL,
		Available:   input.Available,
		Category:    input.Category,
		Measure:     input.Measure,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		// Compensate: the row never landed, so remove the uploaded blob.
		if imageKey != "" {
			if delErr := srv.imageStorage.Delete(ctx, imageKey); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned product image",
					slog.String("key", imageKey), slog.Any("error", delErr))
			}
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", input.SellerID))

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListSellerProducts retrieves a seller's products, newest first.
func (srv *catalogService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// ListByCategory retrieves the available products of one category.
func (srv *catalogService) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error) {
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category " + string(category))
	}

	products, err := srv.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ListAvailable retrieves every product currently offered for sale.
func (srv *catalogService) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product owned by sellerID.
// A replacement image is uploaded before the row update; the previous blob
// is removed best-effort once the row points at the new one.
func (srv *catalogService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.loadOwnedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category " + string(*input.Category))
		}
		product.Category = *input.Category
	}
	if input.Measure != nil {
		if !input.Measure.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown measure " + string(*input.Measure))
		}
		product.Measure = *input.Measure
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = input.Price
	}
	if input.Amount != nil {
		product.Amount = *input.Amount
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	previousImageURL := product.ImageURL
	var newImageKey string
	if input.Image != nil {
		key := imageKeyFor(input.Image.ContentType)

		url, uploadErr := srv.imageStorage.Upload(ctx, key, input.Image.Data, input.Image.ContentType)
		if uploadErr != nil {
			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, "failed to upload replacement image")
		}
		product.ImageURL = url
		newImageKey = key
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if newImageKey != "" {
			if delErr := srv.imageStorage.Delete(ctx, newImageKey); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned replacement image",
					slog.String("key", newImageKey), slog.Any("error", delErr))
			}
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	// The row now points at the new image; drop the old blob best-effort.
	if newImageKey != "" && previousImageURL != "" {
		srv.deleteImageByURL(ctx, previousImageURL)
	}

	return product, nil
}

// DeleteProduct removes a product owned by sellerID together with its stored
// image. A product without an image skips blob removal entirely.
func (srv *catalogService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	product, err := srv.loadOwnedProduct(ctx, sellerID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.deleteImageByURL(ctx, product.ImageURL)

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", productID))

	return nil
}

// loadOwnedProduct fetches a product and verifies seller ownership.
func (srv *catalogService) loadOwnedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if product.SellerID != sellerID {
		return nil, domainerrors.ErrProductOwnership
	}

	return product, nil
}

// deleteImageByURL removes a stored image best-effort. URLs outside the
// bucket (or empty ones) resolve to an empty key, which Delete tolerates.
func (srv *catalogService) deleteImageByURL(ctx context.Context, imageURL string) {
	key := srv.imageStorage.KeyFromURL(imageURL)
	if err := srv.imageStorage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove product image",
			slog.String("key", key), slog.Any("error", err))
	}
}

// imageKeyFor builds an upload-time-derived object key.
func imageKeyFor(contentType string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
