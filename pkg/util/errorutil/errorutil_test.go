package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainErrorKeepsDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewUnauthorized("Invalid credentials"))

	de := ToDomainError(wrapped)

	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Invalid credentials", de.Message)
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	de := ToDomainError(errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, "Server error", de.Message)
	assert.Error(t, de.Unwrap())
}

func TestToDomainErrorMapsFiberErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", fiber.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Not Found"},
		{"bad payload", fiber.NewError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "BAD_REQUEST", "invalid payload"},
		{"too large", fiber.ErrRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "BAD_REQUEST", "Request Entity Too Large"},
		{"server", fiber.ErrServiceUnavailable, http.StatusServiceUnavailable, "INTERNAL_ERROR", "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			assert.Equal(t, tt.status, de.HTTPStatus)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)

	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestConfigurationErrorIsDistinctFromInternal(t *testing.T) {
	cfgErr := ToDomainError(NewConfigurationError("Missing JWT_SECRET on server", nil))
	internal := ToDomainError(NewInternalError(nil))

	assert.Equal(t, cfgErr.HTTPStatus, internal.HTTPStatus)
	assert.NotEqual(t, cfgErr.Code, internal.Code)
	assert.NotEqual(t, cfgErr.Message, internal.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
