package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feira/config"
	"feira/internal/domain/service"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTTL:  time.Minute * 15,
		RefreshTTL: time.Hour * 24 * 7,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()
	roles := []string{"comprador", "vendedor"}

	access, refresh, err := svc.GenerateTokens(profileID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	gotID, gotRoles, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, profileID, gotID)
	assert.Equal(t, roles, gotRoles)
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()

	_, refresh, err := svc.GenerateTokens(profileID, []string{"entregador"})
	require.NoError(t, err)

	gotID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, profileID, gotID)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()

	access, refresh, err := svc.GenerateTokens(profileID, []string{"comprador"})
	require.NoError(t, err)

	// A refresh token must not pass access validation, and vice versa.
	_, _, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	access, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccessToken(access + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTTL:  -time.Minute,
		RefreshTTL: time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Negative TTL is replaced by the default, so build one explicitly expired
	// through the internal helper.
	impl := svc.(*jwtService)
	expired, err := impl.generateToken(uuid.New(), nil, -time.Minute, impl.accessSecret, tokenTypeAccess)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccessToken(expired)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
