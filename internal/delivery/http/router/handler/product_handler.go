package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"feira/internal/delivery/http/response"
	"feira/internal/domain/entity"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxImageSize caps product image uploads at 5 MiB.
const maxImageSize = 5 << 20

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price"`
	Amount      int       `json:"amount"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	Category    string    `json:"category"`
	Measure     string    `json:"measure"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductResponse(product *entity.Product) *productResponse {
	if product == nil {
		return nil
	}

	return &productResponse{
		ID:          product.ID,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Amount:      product.Amount,
		ImageURL:    product.ImageURL,
		Available:   product.Available,
		Category:    string(product.Category),
		Measure:     string(product.Measure),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductResponses(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, newProductResponse(product))
	}

	return out
}

// readImage loads the optional "image" part of a multipart form. A missing
// part is not an error; the product simply has no image.
func readImage(c echo.Context) (*usecase.ProductImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Both a missing part and a non-multipart body mean "no image".
		return nil, nil
	}

	if fileHeader.Size > maxImageSize {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the 5 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded image")
	}
	if len(data) > maxImageSize {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the 5 MiB limit")
	}

	return &usecase.ProductImage{
		Data:        data,
		ContentType: imageContentType(fileHeader, data),
	}, nil
}

func imageContentType(fileHeader *multipart.FileHeader, data []byte) string {
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}

	return http.DetectContentType(data)
}

// CreateProduct handles product creation from a multipart form, with an
// optional image part.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	input := &usecase.CreateProductInput{
		SellerID:    sellerID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    entity.Category(c.FormValue("category")),
		Measure:     entity.Measure(c.FormValue("measure")),
	}

	if priceStr := c.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
		}
		input.Price = &price
	}
	if amountStr := c.FormValue("amount"); amountStr != "" {
		amount, err := strconv.Atoi(amountStr)
		if err != nil || amount < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid amount")
		}
		input.Amount = amount
	}
	input.Available = c.FormValue("available") != "false"

	image, err := readImage(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Image = image

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product), "Product created successfully")
}

// GetProduct handles the public request for one product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "Product retrieved successfully")
}

// ListAvailable handles the public catalog listing.
func (h *ProductHandler) ListAvailable(c echo.Context) error {
	products, err := h.uc.ListAvailable(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "Products retrieved successfully")
}

// ListByCategory handles the public per-category catalog listing.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.uc.ListByCategory(c.Request().Context(), entity.Category(c.Param("category")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "Products retrieved successfully")
}

// ListStoreProducts handles the public listing of one seller's products.
func (h *ProductHandler) ListStoreProducts(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	products, err := h.uc.ListSellerProducts(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "Products retrieved successfully")
}

// ListOwnProducts handles the seller's listing of their own products.
func (h *ProductHandler) ListOwnProducts(c echo.Context) error {
	sellerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	products, err := h.uc.ListSellerProducts(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "Products retrieved successfully")
}

// UpdateProduct handles a partial product update from a multipart form.
// Absent fields leave the stored values untouched.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	input := &usecase.UpdateProductInput{}
	if name := c.FormValue("name"); name != "" {
		input.Name = &name
	}
	if description := c.FormValue("description"); description != "" {
		input.Description = &description
	}
	if priceStr := c.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
		}
		input.Price = &price
	}
	if amountStr := c.FormValue("amount"); amountStr != "" {
		amount, err := strconv.Atoi(amountStr)
		if err != nil || amount < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid amount")
		}
		input.Amount = &amount
	}
	if availableStr := c.FormValue("available"); availableStr != "" {
		available := availableStr != "false"
		input.Available = &available
	}
	if categoryStr := c.FormValue("category"); categoryStr != "" {
		category := entity.Category(categoryStr)
		input.Category = &category
	}
	if measureStr := c.FormValue("measure"); measureStr != "" {
		measure := entity.Measure(measureStr)
		input.Measure = &measure
	}

	image, err := readImage(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Image = image

	product, err := h.uc.UpdateProduct(c.Request().Context(), sellerID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "Product updated successfully")
}

// DeleteProduct handles product removal by the owning seller.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), sellerID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
