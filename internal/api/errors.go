package api

import (
	"errors"
	"net/http"

	"github.com/clientbook/clientbook/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
// The service layer guarantees every error carries a user-facing message, so
// status selection is the only transport policy applied here.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrBadParameter):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrClientNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrDatabaseFailure):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
