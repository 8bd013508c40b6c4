package assignments

import (
	"errors"
	"net/http"

	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/profiles"
)

// Domain errors for assignment operations.
var (
	ErrNotEligible   = errors.New("assignee function does not fit the act's track")
	ErrSlotTaken     = errors.New("case slot already assigned")
	ErrAlreadyOrigin = errors.New("act already originates a case")
	ErrAlreadyLinked = errors.New("act was linked to a case concurrently")
	ErrCaseNotFound  = errors.New("linked case not found")
)

// MapHTTPStatus maps assignment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotEligible) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrAlreadyOrigin) || errors.Is(err, ErrAlreadyLinked) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrCaseNotFound) ||
		errors.Is(err, documents.ErrNotFound) ||
		errors.Is(err, profiles.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
