package handler

import (
	"log/slog"
	"net/http"
	"time"

	"feira/internal/delivery/http/middleware"
	"feira/internal/delivery/http/response"
	"feira/internal/domain/entity"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type purchaseItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Subtotal  float64          `json:"subtotal"`
	Product   *productResponse `json:"product,omitempty"`
}

type purchaseResponse struct {
	ID        uuid.UUID               `json:"id"`
	BuyerID   uuid.UUID               `json:"buyer_id"`
	StoreID   uuid.UUID               `json:"store_id"`
	Status    entity.PurchaseStatus   `json:"status"`
	ItemCount int                     `json:"item_count"`
	Total     float64                 `json:"total"`
	Items     []*purchaseItemResponse `json:"items"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func newPurchaseResponse(purchase *entity.Purchase) *purchaseResponse {
	if purchase == nil {
		return nil
	}

	items := make([]*purchaseItemResponse, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, &purchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
			Product:   newProductResponse(item.Product),
		})
	}

	return &purchaseResponse{
		ID:        purchase.ID,
		BuyerID:   purchase.BuyerID,
		StoreID:   purchase.StoreID,
		Status:    purchase.Status(),
		ItemCount: purchase.ItemCount(),
		Total:     purchase.Total(),
		Items:     items,
		CreatedAt: purchase.CreatedAt,
		UpdatedAt: purchase.UpdatedAt,
	}
}

func newPurchaseResponses(purchases []*entity.Purchase) []*purchaseResponse {
	out := make([]*purchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		out = append(out, newPurchaseResponse(purchase))
	}

	return out
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=99"`
}

type checkoutRequest struct {
	EstimatedTime *string `json:"estimated_time"`
}

// OpenCart returns the caller's open cart for a store, creating it when
// absent.
func (h *OrderHandler) OpenCart(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	storeID, err := uuid.Parse(c.Param("storeID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	purchase, err := h.uc.GetOrCreateOpenPurchase(c.Request().Context(), buyerID, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Cart retrieved successfully")
}

// GetLastOpenCart returns the caller's most recently updated open cart, or
// no data when there is none.
func (h *OrderHandler) GetLastOpenCart(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchase, err := h.uc.GetLastOpenPurchase(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Cart retrieved successfully")
}

// GetCartItemCount returns the summed quantities of the caller's last open
// cart, for the cart badge.
func (h *OrderHandler) GetCartItemCount(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	count, err := h.uc.GetOpenPurchaseItemCount(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "Item count retrieved successfully")
}

// AddItem puts a quantity of a product into the caller's open cart.
func (h *OrderHandler) AddItem(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchaseID, err := uuid.Parse(c.Param("purchaseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.uc.AddItem(c.Request().Context(), buyerID, purchaseID, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Item added successfully")
}

// RemoveItem removes a product's line items from the caller's open cart.
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchaseID, err := uuid.Parse(c.Param("purchaseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	purchase, err := h.uc.RemoveItem(c.Request().Context(), buyerID, purchaseID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Item removed successfully")
}

// ClearCart removes every line item from the caller's open cart.
func (h *OrderHandler) ClearCart(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchaseID, err := uuid.Parse(c.Param("purchaseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	if err := h.uc.ClearPurchase(c.Request().Context(), buyerID, purchaseID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared successfully")
}

// GetPurchase retrieves one purchase.
func (h *OrderHandler) GetPurchase(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	purchase, err := h.uc.GetPurchase(c.Request().Context(), purchaseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Purchase retrieved successfully")
}

// Checkout completes the caller's cart, marking it paid and creating its
// delivery tracking.
func (h *OrderHandler) Checkout(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchaseID, err := uuid.Parse(c.Param("purchaseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	output, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		BuyerID:       buyerID,
		PurchaseID:    purchaseID,
		EstimatedTime: req.EstimatedTime,
	})
	middleware.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"purchase": newPurchaseResponse(output.Purchase),
		"tracking": newTrackingResponse(output.Tracking),
	}, "Checkout completed successfully")
}

// MarkDelivered lets the buyer confirm their order arrived.
func (h *OrderHandler) MarkDelivered(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchaseID, err := uuid.Parse(c.Param("purchaseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase ID")
	}

	purchase, err := h.uc.MarkDelivered(c.Request().Context(), buyerID, purchaseID)
	middleware.RecordOrderOperation("mark_delivered", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponse(purchase), "Delivery confirmed successfully")
}

// ListMyPurchases retrieves the caller's purchase history, newest first.
func (h *OrderHandler) ListMyPurchases(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchases, err := h.uc.ListBuyerPurchases(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponses(purchases), "Purchases retrieved successfully")
}

// ListStoreOrders retrieves the paid purchases placed against the caller's
// store.
func (h *OrderHandler) ListStoreOrders(c echo.Context) error {
	storeID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	purchases, err := h.uc.ListStorePurchases(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseResponses(purchases), "Orders retrieved successfully")
}
