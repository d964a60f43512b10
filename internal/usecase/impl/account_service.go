// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	ProfileRepo    repository.ProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account creation process: profile and
// credential are created in one transaction, then a token pair is issued.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting sign up", slog.String("email", input.Email), slog.Any("role", input.Role))

	if input.Role != "" && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + string(input.Role))
	}

	// bcrypt is CPU-bound; hash outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during sign up")
	}

	var createdProfile *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()
		profileRepo := repoFactory.ProfileRepo()

		_, findErr := credentialRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "sign up rejected")
		}
		if !errors.Is(findErr, repository.ErrCredentialNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newProfile := &entity.Profile{
			Role:     input.Role,
			FullName: input.FullName,
			Endereco: input.Endereco,
			Telefone: input.Telefone,
		}
		if err := profileRepo.Create(ctx, newProfile); err != nil {
			return errors.Wrap(err, "failed to create profile during sign up")
		}

		newCredential := &entity.Credential{
			ProfileID:    newProfile.ID,
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := credentialRepo.Create(ctx, newCredential); err != nil {
			return errors.Wrap(err, "failed to create credential during sign up")
		}

		createdProfile = newProfile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(createdProfile.ID, profileRoles(createdProfile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after sign up")
	}

	srv.log(ctx).Debug("Sign up completed", slog.Any("profileID", createdProfile.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      createdProfile,
	}, nil
}

// SignIn orchestrates the login process.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting sign in", slog.String("email", input.Email))

	credential, err := srv.credentialRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Sign in failed: unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Sign in failed: password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.ProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for sign in")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, profileRoles(profile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Signed in successfully", slog.Any("profileID", profile.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token remains unchanged for security reasons.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	profileID, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for token refresh")
	}

	// Generate only a new access token; the refresh token remains unchanged.
	newAccessToken, _, err := srv.tokenService.GenerateTokens(profile.ID, profileRoles(profile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// profileRoles maps the profile's role column to the token role claims.
// Profiles that have not finished onboarding carry no roles yet.
func profileRoles(profile *entity.Profile) []string {
	if profile.Role == "" {
		return nil
	}

	return []string{string(profile.Role)}
}
