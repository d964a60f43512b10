package impl

import (
	"io"
	"log/slog"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(v float64) *float64 {
	return &v
}

// newOpenPurchase builds an open cart owned by buyerID with one priced line
// item per (price, quantity) pair.
func newOpenPurchase(buyerID, storeID uuid.UUID, lines ...[2]float64) *entity.Purchase {
	purchase := &entity.Purchase{
		ID:      uuid.New(),
		BuyerID: buyerID,
		StoreID: storeID,
	}

	for _, line := range lines {
		productID := uuid.New()
		purchase.Items = append(purchase.Items, &entity.PurchaseItem{
			ID:         uuid.New(),
			PurchaseID: purchase.ID,
			ProductID:  productID,
			Quantity:   int(line[1]),
			Product: &entity.Product{
				ID:    productID,
				Price: floatPtr(line[0]),
			},
		})
	}

	return purchase
}
