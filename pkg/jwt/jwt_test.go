package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	token, err := svc.GenerateToken("a@x.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestSessionService_Expired(t *testing.T) {
	svc := NewSessionService("secret", -time.Minute)

	token, err := svc.GenerateToken("a@x.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionService_WrongSecret(t *testing.T) {
	token, err := NewSessionService("secret", time.Hour).GenerateToken("a@x.com")
	require.NoError(t, err)

	_, err = NewSessionService("other", time.Hour).ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionService_Garbage(t *testing.T) {
	_, err := NewSessionService("secret", time.Hour).ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
