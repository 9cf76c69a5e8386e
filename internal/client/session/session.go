package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the current credential state for the whole process.
// Tokens live in memory only and are never written to durable storage;
// a restart always requires a fresh login. One instance is created at
// application start and shared by reference.
type Session struct {
	mu            sync.RWMutex
	accessToken   string
	refreshToken  string
	authenticated bool
}

// New creates an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// AccessToken returns the current access token, if any.
func (s *Session) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.accessToken != ""
}

// RefreshToken returns the current refresh token, if any.
func (s *Session) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken, s.refreshToken != ""
}

// SetTokens stores a freshly issued token pair and marks the session
// authenticated. Called after login and after every successful refresh
// (the refresh token rotates).
func (s *Session) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.authenticated = true
}

// Clear wipes all credential state. Logical logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.authenticated = false
}

// IsAuthenticated reports whether a prior successful login or refresh exists.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// ExpiresAt extracts the expiry claim from the current access token.
// Дисплейная информация для команды status: подпись токена не
// проверяется и результат никогда не используется для решений об
// авторизации — их принимает сервер.
func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()

	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
