package security

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonRoundTrip(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("hunter22hunter")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := a.VerifyPasswd("hunter22hunter", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonInvalidHash(t *testing.T) {
	_, err := New().VerifyPasswd("x", "$bcrypt$nope")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestMakeResetToken(t *testing.T) {
	tok, err := MakeResetToken()
	require.NoError(t, err)
	assert.Len(t, tok, 20)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)
}

func TestAuthToken(t *testing.T) {
	tok, err := MakeAuthToken(42, "secret")
	require.NoError(t, err)

	id, err := ParseAuthToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseAuthToken(tok, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthTokenExpired(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "1",
		"type":    "auth",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseAuthToken(tok, "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
