package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.Profile{
		ID:       uuid.New(),
		Role:     entity.RoleComprador,
		FullName: "João Pereira",
	}

	fx.profileRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.FullName, profile.FullName)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, profileID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, profileID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_SetsRoleDuringOnboarding(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.Profile{
		ID:       uuid.New(),
		FullName: "João Pereira",
	}

	role := entity.RoleVendedor
	input := &usecase.UpdateProfileInput{Role: &role}

	fx.profileRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.Role == entity.RoleVendedor
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, profile.Role)
}

func TestProfileService_UpdateProfile_RejectsRoleChangeAfterOnboarding(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.Profile{
		ID:   uuid.New(),
		Role: entity.RoleComprador,
	}

	role := entity.RoleVendedor
	input := &usecase.UpdateProfileInput{Role: &role}

	fx.profileRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateProfile(ctx, stored.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_RejectsUnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.Profile{ID: uuid.New()}

	role := entity.Role("astronauta")
	input := &usecase.UpdateProfileInput{Role: &role}

	fx.profileRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateProfile(ctx, stored.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.Profile{
		ID:       uuid.New(),
		Role:     entity.RoleComprador,
		FullName: "João Pereira",
		Endereco: "Rua das Flores, 10",
		Telefone: "11 99999-0000",
	}

	newTelefone := "11 98888-1111"
	input := &usecase.UpdateProfileInput{Telefone: &newTelefone}

	fx.profileRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.Telefone == newTelefone && profile.FullName == "João Pereira"
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newTelefone, profile.Telefone)
	assert.Equal(t, "Rua das Flores, 10", profile.Endereco)
}

func TestProfileService_ListStores_ReturnsSellers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stores := []*entity.Profile{
		{ID: uuid.New(), Role: entity.RoleVendedor, FullName: "Quitanda da Ana"},
		{ID: uuid.New(), Role: entity.RoleVendedor, FullName: "Hortifruti do Zé"},
	}

	fx.profileRepo.EXPECT().FindByRole(ctx, entity.RoleVendedor).Return(stores, nil)

	result, err := fx.service.ListStores(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
