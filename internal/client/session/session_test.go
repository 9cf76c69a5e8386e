package session

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Empty(t *testing.T) {
	s := New()

	token, ok := s.AccessToken()
	assert.False(t, ok)
	assert.Empty(t, token)

	refresh, ok := s.RefreshToken()
	assert.False(t, ok)
	assert.Empty(t, refresh)

	assert.False(t, s.IsAuthenticated())

	_, ok = s.ExpiresAt()
	assert.False(t, ok)
}

func TestSession_SetTokens(t *testing.T) {
	s := New()
	s.SetTokens("access-1", "refresh-1")

	token, ok := s.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "access-1", token)

	refresh, ok := s.RefreshToken()
	require.True(t, ok)
	assert.Equal(t, "refresh-1", refresh)

	assert.True(t, s.IsAuthenticated())

	// Ротация при refresh
	s.SetTokens("access-2", "refresh-2")
	token, _ = s.AccessToken()
	assert.Equal(t, "access-2", token)
}

func TestSession_Clear(t *testing.T) {
	s := New()
	s.SetTokens("access-1", "refresh-1")
	s.Clear()

	_, ok := s.AccessToken()
	assert.False(t, ok)
	_, ok = s.RefreshToken()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestSession_ExpiresAt(t *testing.T) {
	expiry := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	// Токен подписан произвольным ключом: ExpiresAt не проверяет подпись
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := New()
	s.SetTokens(signed, "refresh-1")

	got, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, expiry.Unix(), got.Unix())
}

func TestSession_ExpiresAt_NotAJWT(t *testing.T) {
	s := New()
	s.SetTokens("opaque-token", "refresh-1")

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetTokens("access", "refresh")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.AccessToken()
			_ = s.IsAuthenticated()
		}()
	}
	wg.Wait()

	assert.True(t, s.IsAuthenticated())
}
