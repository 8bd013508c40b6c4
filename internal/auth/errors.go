package auth

import (
	"errors"
	"net/http"
)

// Domain errors for session and permission operations.
var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrInvalidToken    = errors.New("invalid bearer token")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotReady        = errors.New("identity provider not ready")
)

// MapHTTPStatus maps auth domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrProfileNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotReady) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
