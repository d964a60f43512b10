package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Exactly one of ProductID / StoreID is non-null per row.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	StoreID   *uuid.UUID `gorm:"type:uuid;index"`
	Rating    int        `gorm:"not null"`
	Comment   string     `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
