package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricePtr(v float64) *float64 {
	return &v
}

func TestPurchase_Status_DerivedFromFlags(t *testing.T) {
	purchase := &Purchase{}
	assert.Equal(t, PurchaseOpen, purchase.Status())
	assert.True(t, purchase.IsOpen())

	purchase.MarkPaid()
	assert.Equal(t, PurchasePaid, purchase.Status())
	assert.False(t, purchase.IsOpen())

	require.NoError(t, purchase.MarkDelivered())
	assert.Equal(t, PurchaseDelivered, purchase.Status())
}

func TestPurchase_MarkPaid_Idempotent(t *testing.T) {
	purchase := &Purchase{}

	purchase.MarkPaid()
	purchase.MarkPaid()

	assert.Equal(t, PurchasePaid, purchase.Status())
}

func TestPurchase_MarkDelivered_RejectsUnpaid(t *testing.T) {
	purchase := &Purchase{}

	err := purchase.MarkDelivered()

	assert.ErrorIs(t, err, ErrPurchaseNotPaid)
	assert.Equal(t, PurchaseOpen, purchase.Status())
}

func TestPurchase_ItemCount_SumsQuantities(t *testing.T) {
	purchase := &Purchase{
		Items: []*PurchaseItem{
			{Quantity: 2},
			{Quantity: 5},
		},
	}

	assert.Equal(t, 7, purchase.ItemCount())
}

func TestPurchase_ItemCount_ZeroWithoutItems(t *testing.T) {
	purchase := &Purchase{}

	assert.Equal(t, 0, purchase.ItemCount())
}

func TestPurchase_Total_SumsSubtotals(t *testing.T) {
	purchase := &Purchase{
		Items: []*PurchaseItem{
			{Quantity: 2, Product: &Product{Price: pricePtr(10.00)}},
			{Quantity: 1, Product: &Product{Price: pricePtr(4.50)}},
		},
	}

	assert.Equal(t, 24.50, purchase.Total())
}

func TestPurchase_Total_TreatsUnpricedProductAsZero(t *testing.T) {
	purchase := &Purchase{
		Items: []*PurchaseItem{
			{Quantity: 3, Product: &Product{}},
			{Quantity: 2},
		},
	}

	assert.Equal(t, 0.0, purchase.Total())
}

func TestPurchase_FindItemByProduct(t *testing.T) {
	productID := uuid.New()
	wanted := &PurchaseItem{ID: uuid.New(), ProductID: productID, Quantity: 1}
	purchase := &Purchase{
		Items: []*PurchaseItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2},
			wanted,
		},
	}

	assert.Equal(t, wanted, purchase.FindItemByProduct(productID))
	assert.Nil(t, purchase.FindItemByProduct(uuid.New()))
}
