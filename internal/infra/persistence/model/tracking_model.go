package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrackingModel is the GORM-specific struct for the 'tracking' table.
// The unique purchase_id index makes the relation one-to-one.
type TrackingModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PurchaseID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryPersonID *uuid.UUID     `gorm:"type:uuid;index"`
	Status           string         `gorm:"type:varchar(20);not null;default:'pendente'"`
	LastLocation     datatypes.JSON `gorm:"type:jsonb"`
	EstimatedTime    *string        `gorm:"type:interval"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Purchase       *PurchaseModel `gorm:"foreignKey:PurchaseID"`
	DeliveryPerson *ProfileModel  `gorm:"foreignKey:DeliveryPersonID"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingModel) TableName() string {
	return "tracking"
}
