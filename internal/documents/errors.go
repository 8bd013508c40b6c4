package documents

import (
	"errors"
	"net/http"
)

// Domain errors for act registry operations.
var (
	ErrNotFound        = errors.New("act not found")
	ErrDuplicate       = errors.New("act already exists")
	ErrMissingTitle    = errors.New("title required")
	ErrInvalidCategory = errors.New("unknown act category")
	ErrPartyNotAllowed = errors.New("category does not declare this party")
	ErrNoAttachment    = errors.New("act has no attachment")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrInvalidFile     = errors.New("invalid file")
)

// MapHTTPStatus maps act registry domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoAttachment) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrPartyNotAllowed) ||
		errors.Is(err, ErrInvalidFile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
