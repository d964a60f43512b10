package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable profile fields. Nil pointers leave
// the stored value untouched. The role is set once during onboarding and is
// never updatable afterwards.
type UpdateProfileInput struct {
	FullName  *string
	AvatarURL *string
	Endereco  *string
	Telefone  *string
	Role      *entity.Role
}

// ProfileUsecase defines the interface for profile management use cases.
type ProfileUsecase interface {
	// GetProfile retrieves a profile by ID.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies a partial update to the caller's own profile.
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// ListStores retrieves every seller profile.
	ListStores(ctx context.Context) ([]*entity.Profile, error)
}
