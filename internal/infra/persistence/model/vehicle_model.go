package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeliverymanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Model         string    `gorm:"type:varchar(100);not null"`
	Brand         string    `gorm:"type:varchar(100);not null"`
	Plate         string    `gorm:"type:varchar(20)"`
	Year          string    `gorm:"type:varchar(10)"`
	Type          string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
