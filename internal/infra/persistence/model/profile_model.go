// Package model contains the GORM-specific structs that map domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// One row backs every account regardless of role.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Role      string    `gorm:"type:varchar(20);index"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	AvatarURL string    `gorm:"type:text"`
	Endereco  string    `gorm:"type:text"`
	Telefone  string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel is the GORM-specific struct for the 'credentials' table.
// It holds the email/password login data, one row per profile.
type CredentialModel struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
