package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *mockRepo.MockTransactionManager
	credentialRepo *mockRepo.MockCredentialRepository
	profileRepo    *mockRepo.MockProfileRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		ProfileRepo:    profileRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:        service,
		txManager:      txManager,
		credentialRepo: credentialRepo,
		profileRepo:    profileRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		FullName: "Maria Souza",
		Email:    "maria@example.com",
		Password: "Password123!",
		Role:     entity.RoleComprador,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrCredentialNotFound)

			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Profile).ID = uuid.New()
				}).
				Return(nil)

			mockCredentialRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(credential *entity.Credential) bool {
					return credential.Email == input.Email && credential.PasswordHash == "hashed_password"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{string(entity.RoleComprador)}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.FullName, output.Profile.FullName)
	assert.Equal(t, entity.RoleComprador, output.Profile.Role)
}

func TestAccountService_SignUp_RejectsUnknownRole(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		FullName: "Maria Souza",
		Email:    "maria@example.com",
		Password: "Password123!",
		Role:     entity.Role("astronauta"),
	}

	_, err := fx.service.SignUp(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_SignUp_RejectsDuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		FullName: "Maria Souza",
		Email:    "maria@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Credential{Email: input.Email}, nil)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "sign up rejected"))

	_, err := fx.service.SignUp(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()
	credential := &entity.Credential{
		ProfileID:    profileID,
		Email:        "maria@example.com",
		PasswordHash: "hashed_password",
	}
	profile := &entity.Profile{
		ID:       profileID,
		Role:     entity.RoleVendedor,
		FullName: "Maria Souza",
	}

	fx.credentialRepo.EXPECT().FindByEmail(ctx, credential.Email).Return(credential, nil)
	fx.hasher.EXPECT().Check("Password123!", credential.PasswordHash).Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, []string{string(entity.RoleVendedor)}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    credential.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, profileID, output.Profile.ID)
}

func TestAccountService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	credential := &entity.Credential{
		ProfileID:    uuid.New(),
		Email:        "maria@example.com",
		PasswordHash: "hashed_password",
	}

	fx.credentialRepo.EXPECT().FindByEmail(ctx, credential.Email).Return(credential, nil)
	fx.hasher.EXPECT().Check("wrong_password", credential.PasswordHash).Return(false)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    credential.Email,
		Password: "wrong_password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_RefreshToken_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	profileID := uuid.New()
	profile := &entity.Profile{ID: profileID, Role: entity.RoleEntregador}

	fx.tokenService.EXPECT().ValidateRefreshToken("valid_refresh").Return(profileID, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, profileID).Return(profile, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(profileID, []string{string(entity.RoleEntregador)}).
		Return("new_access_token", "unused_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestAccountService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(uuid.Nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
