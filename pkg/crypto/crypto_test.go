package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	require.True(t, VerifyPassword(hashed, "secret123"))
	require.False(t, VerifyPassword(hashed, "wrong"))
}

func TestGenerateTokenLengthAndUniqueness(t *testing.T) {
	first, err := GenerateToken(32)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GenerateToken(32)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestGenerateTokenRejectsNonPositiveLength(t *testing.T) {
	_, err := GenerateToken(0)
	require.Error(t, err)
}
