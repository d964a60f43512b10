// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"feira/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	FullName string
	Email    string
	Password string
	Role     entity.Role
	Endereco string
	Telefone string
}

// SignInInput defines the data required to log in.
type SignInInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token for re-issuing an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the token pair and the authenticated profile.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// RefreshTokenOutput returns the re-issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp creates the credential and profile in one transaction and
	// issues a token pair.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies the password and issues a token pair.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// RefreshToken issues a new access token from a valid refresh token.
	// The refresh token itself remains unchanged.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
}
