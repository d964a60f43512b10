// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"feira/config"
	"feira/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// claims carries the profile identity inside both token types. Roles are
// only embedded in access tokens for stateless authorization.
type claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := time.Minute * 15
	refreshTTL := time.Hour * 24 * 7
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given profile.
func (s *jwtService) GenerateTokens(profileID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(profileID, roles, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(profileID, nil, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token and returns the profile ID and roles.
func (s *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, []string, error) {
	parsed, err := s.parseToken(tokenString, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, nil, err
	}

	profileID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "invalid subject claim")
	}

	return profileID, parsed.Roles, nil
}

// ValidateRefreshToken checks a refresh token and returns the profile ID.
func (s *jwtService) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	parsed, err := s.parseToken(tokenString, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return uuid.Nil, err
	}

	profileID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject claim")
	}

	return profileID, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// parseToken validates a token string against a secret and the expected type.
func (s *jwtService) parseToken(tokenString, secret, wantType string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if parsed.Type != wantType {
		return nil, errors.Errorf("unexpected token type %q", parsed.Type)
	}

	return parsed, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(profileID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Roles: roles,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString([]byte(secret))
}
