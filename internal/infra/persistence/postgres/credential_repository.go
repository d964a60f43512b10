package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// FindByEmail retrieves the credential registered for an email address.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// Create persists a new credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ProfileID:    data.ProfileID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ProfileID:    data.ProfileID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
