package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       *float64  `gorm:"type:numeric(10,2)"`
	Amount      int       `gorm:"not null;default:0"`
	ImageURL    string    `gorm:"type:text"`
	Available   bool      `gorm:"not null;default:true"`
	Category    string    `gorm:"type:varchar(30);not null;index"`
	Measure     string    `gorm:"type:varchar(30);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
