package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiry time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jane@example.com",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	s := New(tokenPath(t), nil, zerolog.Nop())
	require.NoError(t, s.Login(context.Background(), signedToken(t, expiry)))

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.Equal(t, expiry.Unix(), got.Unix())
}

func TestTokenExpiry_NoToken(t *testing.T) {
	s := New(tokenPath(t), nil, zerolog.Nop())
	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	// Non-JWT tokens are valid credentials with no readable expiry.
	s := New(tokenPath(t), nil, zerolog.Nop())
	require.NoError(t, s.Login(context.Background(), "opaque-session-token"))

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.True(t, s.IsAuthenticated())
}

func TestExpiresSoon_WithinWindow(t *testing.T) {
	s := New(tokenPath(t), nil, zerolog.Nop())
	require.NoError(t, s.Login(context.Background(), signedToken(t, time.Now().Add(time.Minute))))

	assert.True(t, s.ExpiresSoon(5*time.Minute))
	assert.False(t, s.ExpiresSoon(10*time.Second))
}

func TestExpiresSoon_UnreadableExpiryNeverWarns(t *testing.T) {
	s := New(tokenPath(t), nil, zerolog.Nop())
	require.NoError(t, s.Login(context.Background(), "opaque-session-token"))
	assert.False(t, s.ExpiresSoon(time.Hour))
}
