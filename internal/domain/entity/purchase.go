package entity

import (
	"time"

	"feira/internal/errors"

	"github.com/google/uuid"
)

// Purchase state errors. They guard the monotonic status transitions so
// that illegal states (delivered-but-unpaid, mutated-after-payment) are
// rejected at the entity level, before any persistence happens.
var (
	// ErrPurchaseNotOpen is returned when line items are mutated on a purchase
	// that has already been paid.
	ErrPurchaseNotOpen = errors.New("purchase is no longer open")
	// ErrPurchaseNotPaid is returned when a delivery confirmation arrives for
	// a purchase that was never paid.
	ErrPurchaseNotPaid = errors.New("purchase has not been paid")
	// ErrPurchaseEmpty is returned when checkout is attempted on a cart with
	// no line items.
	ErrPurchaseEmpty = errors.New("purchase has no items")
)

// PurchaseStatus is the derived, tagged status of a purchase. The table keeps
// the two historical boolean columns; the status makes the legal states
// explicit and everything else unrepresentable.
type PurchaseStatus string

const (
	// PurchaseOpen is the initial state: the cart. Line items are mutable.
	PurchaseOpen PurchaseStatus = "open"
	// PurchasePaid means checkout completed. The record is frozen except for
	// the delivery confirmation.
	PurchasePaid PurchaseStatus = "paid"
	// PurchaseDelivered is the terminal state.
	PurchaseDelivered PurchaseStatus = "delivered"
)

// Purchase is the central aggregate of the order lifecycle: it starts life as
// a buyer's open cart for one store and ends as a delivered order.
type Purchase struct {
	ID          uuid.UUID       // The unique identifier for the purchase.
	BuyerID     uuid.UUID       // The buying profile. Owns the purchase for mutation while open.
	StoreID     uuid.UUID       // The selling profile the cart belongs to.
	IsPaid      bool            // Set once at checkout, never cleared.
	IsDelivered bool            // Set once at delivery confirmation, never cleared.
	Items       []*PurchaseItem // Line items. Loaded with the purchase on every read path.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PurchaseItem is a quantity of one product inside one purchase. It references
// the product, it does not own it.
type PurchaseItem struct {
	ID         uuid.UUID
	PurchaseID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int      // Always >= 1. Items whose quantity would drop to zero are removed instead.
	Product    *Product // Joined product record. Nil when the product was not loaded.
}

// Subtotal returns quantity times unit price, treating an unloaded or
// unpriced product as zero.
func (i *PurchaseItem) Subtotal() float64 {
	if i.Product == nil {
		return 0
	}

	return i.Product.UnitPrice() * float64(i.Quantity)
}

// Status derives the tagged lifecycle state from the two boolean columns.
func (p *Purchase) Status() PurchaseStatus {
	switch {
	case p.IsPaid && p.IsDelivered:
		return PurchaseDelivered
	case p.IsPaid:
		return PurchasePaid
	default:
		return PurchaseOpen
	}
}

// IsOpen reports whether line items may still be mutated.
func (p *Purchase) IsOpen() bool {
	return !p.IsPaid
}

// MarkPaid transitions the purchase from open to paid. Calling it on an
// already paid purchase is a no-op, which makes checkout retries safe.
func (p *Purchase) MarkPaid() {
	p.IsPaid = true
}

// MarkDelivered transitions the purchase from paid to delivered. The paid
// guard keeps delivered-but-unpaid unrepresentable.
func (p *Purchase) MarkDelivered() error {
	if !p.IsPaid {
		return ErrPurchaseNotPaid
	}
	p.IsDelivered = true

	return nil
}

// ItemCount sums the quantities across all line items.
func (p *Purchase) ItemCount() int {
	total := 0
	for _, item := range p.Items {
		total += item.Quantity
	}

	return total
}

// Total sums the subtotals across all line items.
func (p *Purchase) Total() float64 {
	total := 0.0
	for _, item := range p.Items {
		total += item.Subtotal()
	}

	return total
}

// FindItemByProduct returns the line item referencing the given product, or
// nil when the product is not in the cart.
func (p *Purchase) FindItemByProduct(productID uuid.UUID) *PurchaseItem {
	for _, item := range p.Items {
		if item.ProductID == productID {
			return item
		}
	}

	return nil
}
