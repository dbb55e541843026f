package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword(hash, "s3cret-pass"))
	require.False(t, CheckPassword(hash, "wrong-pass"))
	require.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	require.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	require.False(t, CheckPassword("", "anything"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	require.True(t, CheckPassword(h1, "same-input"))
	require.True(t, CheckPassword(h2, "same-input"))
}

func TestGenerateRandomToken(t *testing.T) {
	tok := GenerateRandomToken(32)
	require.Len(t, tok, 32)
	for _, r := range tok {
		require.Contains(t, "0123456789abcdef", string(r))
	}

	other := GenerateRandomToken(32)
	require.NotEqual(t, tok, other)
}
