package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feira/config"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("senha-segura-123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "senha-segura-123", hash)

	assert.True(t, hasher.Check("senha-segura-123", hash))
	assert.False(t, hasher.Check("senha-errada", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)
	second, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)

	// bcrypt generates a fresh salt per hash.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("mesma-senha", first))
	assert.True(t, hasher.Check("mesma-senha", second))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("qualquer", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	hash, err := hasher.Hash("senha")
	require.NoError(t, err)
	assert.True(t, hasher.Check("senha", hash))
}
