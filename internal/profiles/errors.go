package profiles

import (
	"errors"
	"net/http"
)

// Domain errors for personnel operations.
var (
	ErrNotFound        = errors.New("profile not found")
	ErrDuplicate       = errors.New("profile already exists")
	ErrInvalidFunction = errors.New("invalid judicial function")
	ErrInvalidLevel    = errors.New("hierarchy level out of range")
	ErrInvalidRole     = errors.New("unknown extra role")
)

// MapHTTPStatus maps personnel domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidFunction) || errors.Is(err, ErrInvalidLevel) || errors.Is(err, ErrInvalidRole) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
