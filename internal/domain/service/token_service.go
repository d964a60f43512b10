package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given profile.
	GenerateTokens(profileID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns the profile ID
	// and roles embedded in it.
	ValidateAccessToken(tokenString string) (uuid.UUID, []string, error)

	// ValidateRefreshToken checks a refresh token and returns the profile ID.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
