package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clientbook/clientbook/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "bad_parameter",
			err:      service.NewBadParameterError("name cannot be blank"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "client_not_found",
			err:      service.NewClientNotFoundError("Client with id 10 was not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "database_failure",
			err:      service.NewDatabaseFailureError(errors.New("connection reset")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "wrapped_service_error",
			err:      fmt.Errorf("handling request: %w", service.NewClientNotFoundError("Account with id 1 was not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "unknown_error_defaults_to_500",
			err:      errors.New("something unexpected"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}
