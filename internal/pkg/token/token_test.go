package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	tok, err := Generate(42, "runner@example.com", "user", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(tok, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "runner@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.ID)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 55*time.Minute)
	assert.LessOrEqual(t, remaining, TTL)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Generate(1, "runner@example.com", "user", "secret-a")
	require.NoError(t, err)

	_, err = Parse(tok, "secret-b")
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID: 7,
		Email:  "runner@example.com",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = Parse(signed, "test-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_RejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none style tokens must never validate
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(unsigned, "test-secret")
	assert.Error(t, err)
}
