// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"feira/internal/domain/entity"
	"feira/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCredentialNotFound is returned when no credential exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
)

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByRole retrieves every profile with the given role. Used to list
	// stores (vendedor) and available couriers (entregador).
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile. The role column is never touched.
	Update(ctx context.Context, profile *entity.Profile) error
}

// CredentialRepository defines the operations for email/password credentials.
type CredentialRepository interface {
	// FindByEmail retrieves the credential registered for an email address.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new credential.
	Create(ctx context.Context, credential *entity.Credential) error
}
