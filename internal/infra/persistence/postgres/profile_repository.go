// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByRole retrieves every profile with the given role, newest first.
func (repo *profileRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by role")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile. The role column is written only when
// set, so onboarding can fill it in while later edits leave it untouched.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	updates := map[string]any{
		"full_name":  profile.FullName,
		"avatar_url": profile.AvatarURL,
		"endereco":   profile.Endereco,
		"telefone":   profile.Telefone,
	}
	if profile.Role != "" {
		updates["role"] = string(profile.Role)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Role:      entity.Role(data.Role),
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		Endereco:  data.Endereco,
		Telefone:  data.Telefone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		Role:      string(data.Role),
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		Endereco:  data.Endereco,
		Telefone:  data.Telefone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
