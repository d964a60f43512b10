package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrOpenPurchaseExists is returned when creating an open purchase would
	// violate the one-open-cart-per-buyer-and-store constraint.
	ErrOpenPurchaseExists = errors.New("an open purchase already exists for this buyer and store")
	// ErrPurchaseItemNotFound is returned when a line item is not found.
	ErrPurchaseItemNotFound = errors.New("purchase item not found")
)

// PurchaseRepository defines the interface for order-lifecycle persistence.
// Every read returns the purchase with its line items and their products
// joined, because every caller needs them.
type PurchaseRepository interface {
	// Create persists a new open purchase for a buyer and store.
	// Returns ErrOpenPurchaseExists when the partial unique index on
	// (buyer_id, store_id) WHERE NOT is_paid rejects the insert.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByID retrieves a purchase with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// FindOpenByBuyerAndStore retrieves the open (unpaid) purchase for a
	// buyer and store pair, or ErrPurchaseNotFound when none exists.
	FindOpenByBuyerAndStore(ctx context.Context, buyerID, storeID uuid.UUID) (*entity.Purchase, error)

	// FindLastOpenByBuyer retrieves the buyer's most recently updated open
	// purchase across all stores, or ErrPurchaseNotFound when none exists.
	FindLastOpenByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Purchase, error)

	// FindByBuyer retrieves the buyer's purchases, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)

	// FindByStore retrieves the paid purchases placed against a store,
	// newest first. Sellers read these, they never mutate them.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Purchase, error)

	// UpdateFlags persists the is_paid / is_delivered columns of a purchase.
	UpdateFlags(ctx context.Context, purchase *entity.Purchase) error

	// CreateItem inserts a new line item.
	CreateItem(ctx context.Context, item *entity.PurchaseItem) error

	// UpdateItemQuantity sets the quantity of an existing line item.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItemsByProduct removes the line items of a purchase that
	// reference the given product.
	DeleteItemsByProduct(ctx context.Context, purchaseID, productID uuid.UUID) error

	// DeleteItems removes every line item of a purchase.
	DeleteItems(ctx context.Context, purchaseID uuid.UUID) error
}
