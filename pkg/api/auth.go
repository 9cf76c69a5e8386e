package api

import (
	"errors"
	"fmt"
)

// LoginRequest is the credential payload for /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued token pair.
// Returned by both login and refresh; refresh rotates the refresh token.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // rotated refresh token
	ExpiresIn    int64  `json:"expires_in"`    // access token lifetime in seconds
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusError is returned for any non-2xx response the pipeline does not
// recover itself. Callers interpret the status code; the pipeline only
// intercepts 401s.
type StatusError struct {
	Message string
	Status  int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.Status)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsStatus reports whether err wraps a StatusError with the given code.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
