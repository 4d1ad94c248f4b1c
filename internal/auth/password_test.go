package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesAgainstOriginal(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("WRONG-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	t.Parallel()

	// A non-bcrypt string must fail verification, not panic
	assert.False(t, CheckPasswordHash("secret1", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("super_password123"))
}
