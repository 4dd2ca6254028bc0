package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secreto = "secreto-de-prueba"

func TestGenerateAccessYParse(t *testing.T) {
	token, err := GenerateAccess(secreto, 7, "mgarcia", "admin", "farmacia-vida-sana", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(secreto, token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.TrabajadorID)
	assert.Equal(t, "mgarcia", claims.Usuario)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, "farmacia-vida-sana", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
}

func TestGenerateRefreshSoloLlevaIdentidad(t *testing.T) {
	token, err := GenerateRefresh(secreto, 7, "farmacia-vida-sana", 60*24)
	require.NoError(t, err)

	claims, err := Parse(secreto, token)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.Type)
	assert.Equal(t, 7, claims.TrabajadorID)
	assert.Empty(t, claims.Usuario)
	assert.Empty(t, claims.Rol)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := GenerateAccess(secreto, 7, "mgarcia", "admin", "farmacia-vida-sana", 15)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := GenerateAccess(secreto, 7, "mgarcia", "admin", "farmacia-vida-sana", -1)
	require.NoError(t, err)

	_, err = Parse(secreto, token)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, err := Parse(secreto, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := GenerateAccess("", 7, "mgarcia", "admin", "farmacia-vida-sana", 15)
	assert.Error(t, err)
}
