package cases

import (
	"errors"
	"net/http"
)

// Domain errors for case registry operations.
var (
	ErrNotFound      = errors.New("case not found")
	ErrDuplicate     = errors.New("case already exists")
	ErrAlreadyClosed = errors.New("case already closed")
)

// MapHTTPStatus maps case registry domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrAlreadyClosed) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
