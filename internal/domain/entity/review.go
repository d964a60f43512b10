package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating of a product or a store. Exactly one of
// ProductID or StoreID is set, depending on what is being reviewed.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID  // The authoring profile.
	ProductID *uuid.UUID // Reviewed product, when the target is a product.
	StoreID   *uuid.UUID // Reviewed store (seller profile), when the target is a store.
	Rating    int        // 1 to 5.
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
