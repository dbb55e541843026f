package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateVerifyRoundTrip(t *testing.T) {
	perms := []string{"store:purchase", "streams:watch"}
	tok, err := Generate(42, "fan", 7, true, perms, testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims := Verify(tok, testSecret)
	require.NotNil(t, claims)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "fan", claims.Role)
	require.Equal(t, uint(7), claims.TeamID)
	require.True(t, claims.IsSocio)
	require.Equal(t, perms, claims.Permissions)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Generate(1, "admin", 1, false, nil, testSecret, 24)
	require.NoError(t, err)
	require.Nil(t, Verify(tok, "a-different-secret"))
}

func TestVerifyExpiredToken(t *testing.T) {
	// Negative expiry puts the deadline in the past.
	tok, err := Generate(1, "fan", 1, false, nil, testSecret, -1)
	require.NoError(t, err)
	require.Nil(t, Verify(tok, testSecret))
}

func TestVerifyGarbage(t *testing.T) {
	require.Nil(t, Verify("", testSecret))
	require.Nil(t, Verify("not.a.jwt", testSecret))
	require.Nil(t, Verify("eyJhbGciOiJub25lIn0.e30.", testSecret))
}

func TestVerifyRejectsZeroUserID(t *testing.T) {
	tok, err := Generate(0, "fan", 1, false, nil, testSecret, 24)
	require.NoError(t, err)
	require.Nil(t, Verify(tok, testSecret))
}
