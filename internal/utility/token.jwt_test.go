package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken_ParseToken(t *testing.T) {
	tokenMap, err := CreateToken("secreto-de-prueba", "user-123", "18f2a3", "42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenMap["token"])

	claims, err := ParseToken("secreto-de-prueba", tokenMap["token"])
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "18f2a3", claims.Time)
	assert.Equal(t, "42", claims.RandomNumber)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseToken_SecretoIncorrecto(t *testing.T) {
	tokenMap, err := CreateToken("secreto-correcto", "user-123", "0", "1", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("otro-secreto", tokenMap["token"])
	assert.Error(t, err)
}

func TestParseToken_Expirado(t *testing.T) {
	tokenMap, err := CreateToken("secreto", "user-123", "0", "1", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secreto", tokenMap["token"])
	assert.Error(t, err)
}

func TestParseToken_Basura(t *testing.T) {
	_, err := ParseToken("secreto", "esto-no-es-un-jwt")
	assert.Error(t, err)
}
