package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(GenerateSymmetricKey())
	require.NoError(t, err)

	token, err := maker.CreateToken(TokenClaims{UserID: "user-1", Name: "Anton", Role: "manager", CompanyID: "company-1"}, time.Minute)
	require.NoError(t, err)

	claims, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Anton", claims.Name)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestPasetoMaker_RejectsForeignKey(t *testing.T) {
	issuer, _ := NewPasetoMaker(GenerateSymmetricKey())
	verifier, _ := NewPasetoMaker(GenerateSymmetricKey())

	token, err := issuer.CreateToken(TokenClaims{UserID: "user-1", Role: "staff"}, time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasetoMaker_RejectsExpired(t *testing.T) {
	maker, _ := NewPasetoMaker(GenerateSymmetricKey())

	token, err := maker.CreateToken(TokenClaims{UserID: "user-1", Role: "staff"}, -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasetoMaker_RequiresRole(t *testing.T) {
	maker, _ := NewPasetoMaker(GenerateSymmetricKey())

	_, err := maker.CreateToken(TokenClaims{UserID: "user-1"}, time.Minute)
	assert.Error(t, err)

	_, err = NewPasetoMaker("zz")
	assert.Error(t, err)
}
