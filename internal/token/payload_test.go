package token

import (
	"testing"
	"time"
	
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, subject, role string, expiresAt time.Time) string {
	t.Helper()

	claims := Payload{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tokenString
}

func TestParsePayload(t *testing.T) {
	tokenString := signToken(t, "user-42", "Police", time.Now().Add(time.Hour))
	
	payload, err := ParsePayload(tokenString)
	require.NoError(t, err)
	require.Equal(t, "user-42", payload.RecipientID())
	require.Equal(t, "Police", payload.Role)
	require.True(t, payload.ValidAt(time.Now()))
}

func TestParsePayloadMalformed(t *testing.T) {
	_, err := ParsePayload("not-a-token")
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestParsePayloadMissingSubject(t *testing.T) {
	tokenString := signToken(t, "", "Admin", time.Now().Add(time.Hour))
	
	_, err := ParsePayload(tokenString)
	require.ErrorIs(t, err, ErrMissingSubject)
}

func TestPayloadExpiry(t *testing.T) {
	tokenString := signToken(t, "user-42", "Individual", time.Now().Add(-time.Minute))
	
	payload, err := ParsePayload(tokenString)
	require.NoError(t, err)
	require.False(t, payload.ValidAt(time.Now()))
}

func TestSessionLifecycle(t *testing.T) {
	session := NewSession()
	require.False(t, session.ActiveAt(time.Now()))
	
	err := session.SetToken(signToken(t, "user-7", "Specialist", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.True(t, session.ActiveAt(time.Now()))
	require.Equal(t, "user-7", session.Payload().RecipientID())
	
	session.Clear()
	require.False(t, session.ActiveAt(time.Now()))
	require.Empty(t, session.Token())
}

func TestSessionRejectsMalformedToken(t *testing.T) {
	session := NewSession()
	require.Error(t, session.SetToken("garbage"))
	require.False(t, session.ActiveAt(time.Now()))
}

func TestSessionExpiredToken(t *testing.T) {
	session := NewSession()
	err := session.SetToken(signToken(t, "user-7", "Admin", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	
	// Token được lưu nhưng phiên không còn active
	require.False(t, session.ActiveAt(time.Now()))
}
