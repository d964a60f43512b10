package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
// The partial unique index enforces at most one open (unpaid) cart per
// buyer and store pair; paid rows fall outside the index.
type PurchaseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_purchases_open_buyer_store,where:is_paid = false"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_purchases_open_buyer_store,where:is_paid = false"`
	IsPaid      bool      `gorm:"not null;default:false"`
	IsDelivered bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []*PurchaseItemModel `gorm:"foreignKey:PurchaseID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel is the GORM-specific struct for the 'purchase_products'
// table: one product, with a quantity, inside one purchase.
type PurchaseItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_purchase_products_purchase_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_products_purchase_product"`
	Quantity   int       `gorm:"not null;default:1"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseItemModel) TableName() string {
	return "purchase_products"
}
