package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/shared/authorization"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)

	_, err := h.Hash("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("correct horse", hash))
	assert.ErrorIs(t, h.Verify("wrong horse!", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("correct horse", "not-a-hash"), ErrPasswordMismatch)
}

func TestJWTService(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	t.Run("round trip", func(t *testing.T) {
		token, exp, err := svc.Generate(42, "sess-1", authorization.RoleAdmin, time.Time{})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "sess-1", claims.SessionID)
		assert.Equal(t, authorization.RoleAdmin, claims.Role)
	})

	t.Run("capped by session expiry", func(t *testing.T) {
		sessionEnd := time.Now().Add(2 * time.Minute).Truncate(time.Second)
		_, exp, err := svc.Generate(1, "sess-2", authorization.RoleUser, sessionEnd)
		require.NoError(t, err)
		assert.Equal(t, sessionEnd, exp)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewJWTService("other", 15).Generate(1, "s", authorization.RoleUser, time.Time{})
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			UserID:    1,
			SessionID: "s",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}
