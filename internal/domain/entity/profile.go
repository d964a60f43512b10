// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the identity record behind every account in the marketplace.
// The same table backs buyers, sellers and couriers; Role decides which
// surface of the application the account is routed into.
type Profile struct {
	ID        uuid.UUID // The unique identifier for the profile, shared with the credential record.
	Role      Role      // comprador, vendedor or entregador. Empty until onboarding completes.
	FullName  string    // The account's display name. For sellers this doubles as the store name.
	AvatarURL string    // Public URL of the avatar image. Optional.
	Endereco  string    // Street address. Optional.
	Telefone  string    // Contact phone. Optional.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsSeller reports whether the profile can own products.
func (p *Profile) IsSeller() bool {
	return p.Role == RoleVendedor
}

// IsCourier reports whether the profile can be assigned to deliveries.
func (p *Profile) IsCourier() bool {
	return p.Role == RoleEntregador
}

// Credential holds the email/password authentication data for a profile.
// The password is always stored as a bcrypt hash.
type Credential struct {
	ProfileID    uuid.UUID // Foreign key to the profile this credential authenticates.
	Email        string    // Login identifier, unique across the system.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
