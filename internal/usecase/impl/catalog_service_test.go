package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	imageStorage *mockSvc.MockImageStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStorage := mockSvc.NewMockImageStorage(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		ImageStorage: imageStorage,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		imageStorage: imageStorage,
	}
}

func TestCatalogService_CreateProduct_WithImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		SellerID:  uuid.New(),
		Name:      "Tomate Italiano",
		Price:     floatPtr(8.90),
		Amount:    50,
		Available: true,
		Category:  entity.CategoryLegumes,
		Measure:   entity.MeasureKilograma,
		Image: &usecase.ProductImage{
			Data:        []byte("fake-png-bytes"),
			ContentType: "image/png",
		},
	}

	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/png").
		Return("https://cdn.example.com/products/abc.png", nil)

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.SellerID == input.SellerID &&
				product.Name == input.Name &&
				product.ImageURL == "https://cdn.example.com/products/abc.png"
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/abc.png", product.ImageURL)
	assert.Equal(t, entity.CategoryLegumes, product.Category)
}

func TestCatalogService_CreateProduct_CompensatesImageOnInsertFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		SellerID: uuid.New(),
		Name:     "Alface Crespa",
		Category: entity.CategoryVerduras,
		Measure:  entity.MeasureUnidade,
		Image: &usecase.ProductImage{
			Data:        []byte("fake-jpeg-bytes"),
			ContentType: "image/jpeg",
		},
	}

	var uploadedKey string
	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/jpeg").
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return("https://cdn.example.com/products/orphan.jpg", nil)

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(errors.New("insert failed"))

	fx.imageStorage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == uploadedKey
		})).
		Return(nil)

	_, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
}

func TestCatalogService_CreateProduct_RejectsUnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		SellerID: uuid.New(),
		Name:     "Produto Misterioso",
		Category: entity.Category("Eletronicos"),
		Measure:  entity.MeasureUnidade,
	}

	_, err := fx.service.CreateProduct(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListByCategory_RejectsUnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.ListByCategory(ctx, entity.Category("Eletronicos"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	stored := &entity.Product{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Name:      "Banana Prata",
		Price:     floatPtr(5.00),
		Amount:    30,
		Available: true,
		Category:  entity.CategoryFrutas,
		Measure:   entity.MeasureCacho,
	}

	newPrice := 6.50
	input := &usecase.UpdateProductInput{Price: &newPrice}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ID == stored.ID &&
				product.Name == "Banana Prata" &&
				product.Price != nil && *product.Price == newPrice
		})).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, sellerID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newPrice, *product.Price)
	assert.Equal(t, 30, product.Amount)
}

func TestCatalogService_UpdateProduct_RejectsForeignSeller(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := &entity.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
	}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateProduct(ctx, uuid.New(), stored.ID, &usecase.UpdateProductInput{})

	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
}

func TestCatalogService_UpdateProduct_ReplacesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	stored := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     "Queijo Minas",
		Category: entity.CategoryLaticinios,
		Measure:  entity.MeasureGrama,
		ImageURL: "https://cdn.example.com/products/old.png",
	}

	input := &usecase.UpdateProductInput{
		Image: &usecase.ProductImage{
			Data:        []byte("new-image-bytes"),
			ContentType: "image/webp",
		},
	}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/webp").
		Return("https://cdn.example.com/products/new.webp", nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ImageURL == "https://cdn.example.com/products/new.webp"
		})).
		Return(nil)

	// The old blob goes away only after the row points at the new one.
	fx.imageStorage.EXPECT().
		KeyFromURL("https://cdn.example.com/products/old.png").
		Return("products/old.png")
	fx.imageStorage.EXPECT().Delete(ctx, "products/old.png").Return(nil)

	product, err := fx.service.UpdateProduct(ctx, sellerID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/new.webp", product.ImageURL)
}

func TestCatalogService_DeleteProduct_RemovesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	stored := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		ImageURL: "https://cdn.example.com/products/img.png",
	}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.productRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
	fx.imageStorage.EXPECT().KeyFromURL(stored.ImageURL).Return("products/img.png")
	fx.imageStorage.EXPECT().Delete(ctx, "products/img.png").Return(nil)

	err := fx.service.DeleteProduct(ctx, sellerID, stored.ID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_WithoutImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	stored := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
	}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.productRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
	fx.imageStorage.EXPECT().KeyFromURL("").Return("")
	fx.imageStorage.EXPECT().Delete(ctx, "").Return(nil)

	err := fx.service.DeleteProduct(ctx, sellerID, stored.ID)

	require.NoError(t, err)
}
