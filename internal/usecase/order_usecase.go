package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data for completing a cart.
type CheckoutInput struct {
	BuyerID    uuid.UUID
	PurchaseID uuid.UUID

	// EstimatedTime optionally seeds the tracking row's delivery estimate,
	// as an interval string such as "00:45:00".
	EstimatedTime *string
}

// CheckoutOutput returns the paid purchase and its freshly created tracking.
type CheckoutOutput struct {
	Purchase *entity.Purchase
	Tracking *entity.Tracking
}

// OrderUsecase defines the interface for the order lifecycle: the open cart,
// checkout and delivery confirmation.
type OrderUsecase interface {
	// GetOrCreateOpenPurchase returns the buyer's open cart for a store,
	// creating it when absent. Concurrent creations collapse onto one row.
	GetOrCreateOpenPurchase(ctx context.Context, buyerID, storeID uuid.UUID) (*entity.Purchase, error)

	// AddItem puts a quantity of a product into an open cart. Quantity is
	// clamped to [1, 99]; adding a product already in the cart merges the
	// quantities instead of creating a second line item.
	AddItem(ctx context.Context, buyerID, purchaseID, productID uuid.UUID, quantity int) (*entity.Purchase, error)

	// RemoveItem removes a product's line items from an open cart.
	RemoveItem(ctx context.Context, buyerID, purchaseID, productID uuid.UUID) (*entity.Purchase, error)

	// ClearPurchase removes every line item from an open cart.
	ClearPurchase(ctx context.Context, buyerID, purchaseID uuid.UUID) error

	// GetPurchase retrieves a purchase visible to the caller.
	GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error)

	// GetLastOpenPurchase retrieves the buyer's most recently updated open
	// cart across all stores, or nil when the buyer has none.
	GetLastOpenPurchase(ctx context.Context, buyerID uuid.UUID) (*entity.Purchase, error)

	// GetOpenPurchaseItemCount sums the quantities in the buyer's last open
	// cart; zero when the buyer has none.
	GetOpenPurchaseItemCount(ctx context.Context, buyerID uuid.UUID) (int, error)

	// Checkout marks the cart paid and creates its tracking record in one
	// transaction, then publishes an order-paid event.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// MarkDelivered records the buyer confirming their paid purchase arrived
	// and moves its tracking to the terminal success state. Rejected when the
	// caller is not the purchase's buyer.
	MarkDelivered(ctx context.Context, buyerID, purchaseID uuid.UUID) (*entity.Purchase, error)

	// ListBuyerPurchases retrieves the buyer's purchases, newest first.
	ListBuyerPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)

	// ListStorePurchases retrieves the paid purchases placed against a store.
	ListStorePurchases(ctx context.Context, storeID uuid.UUID) ([]*entity.Purchase, error)
}
