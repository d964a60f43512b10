package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update to a profile. The role may only be
// set once, during onboarding; afterwards it is immutable.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + string(*input.Role))
		}
		if profile.Role != "" && profile.Role != *input.Role {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("role cannot be changed after onboarding")
		}
		profile.Role = *input.Role
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Endereco != nil {
		profile.Endereco = *input.Endereco
	}
	if input.Telefone != nil {
		profile.Telefone = *input.Telefone
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("profileID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("profileID", id))

	return profile, nil
}

// ListStores retrieves every seller profile.
func (srv *profileService) ListStores(ctx context.Context) ([]*entity.Profile, error) {
	stores, err := srv.profileRepo.FindByRole(ctx, entity.RoleVendedor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}
