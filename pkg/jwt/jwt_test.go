package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "test-secret-key-for-unit-tests"
	issuer = "inventario-hu-test"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := Generate(secret, "U-1", "bodeguero", issuer, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(secret, issuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "U-1", claims.UserID)
	assert.Equal(t, "U-1", claims.Subject)
	assert.Equal(t, "bodeguero", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestParse_SinIssuerNoValidaEmisor(t *testing.T) {
	tok, err := Generate(secret, "U-1", "admin", "otro-emisor", time.Hour)
	require.NoError(t, err)

	_, err = Parse(secret, "", tok)
	assert.NoError(t, err)
}

func TestParse_Errores(t *testing.T) {
	valid, err := Generate(secret, "U-1", "admin", issuer, time.Hour)
	require.NoError(t, err)
	expired, err := Generate(secret, "U-1", "admin", issuer, -time.Minute)
	require.NoError(t, err)
	foreign, err := Generate(secret, "U-1", "admin", "otro-emisor", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"token expirado", secret, expired},
		{"secret incorrecto", "otro-secret-completamente-distinto", valid},
		{"emisor distinto", secret, foreign},
		{"token malformado", secret, "token.invalido.aqui"},
		{"secret vacío", "", valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.secret, issuer, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "U-1", "admin", issuer, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
