package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-clip-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-clip-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cure-clip-pass"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
