//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

func TestCreationErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		expected   string
	}{
		{statusCode: http.StatusUnprocessableEntity, expected: "Repository already exists"},
		{statusCode: http.StatusUnauthorized, expected: "Authentication failed"},
		{statusCode: http.StatusNotFound, expected: "Permission denied"},
		{statusCode: http.StatusForbidden, expected: "Unknown error"},
		{statusCode: 0, expected: "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("should map status %d", tt.statusCode), func(t *testing.T) {
			t.Parallel()

			// given
			statusCode := tt.statusCode

			// when
			msg := entities.CreationErrorMessage(statusCode)

			// then
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestResponseError(t *testing.T) {
	t.Parallel()

	t.Run("should include status and body in the message", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.ResponseError{
			Operation:  "upload README.md",
			StatusCode: http.StatusUnprocessableEntity,
			Body:       "Invalid request",
		}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "upload README.md: HTTP 422: Invalid request", msg)
	})

	t.Run("should fall back to the wrapped error without a status", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("connection refused")
		err := &entities.ResponseError{Operation: "create repository", Err: cause}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "create repository: connection refused", msg)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should expose status and body through wrapping", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("outer: %w", &entities.ResponseError{
			Operation:  "enable pages",
			StatusCode: http.StatusConflict,
			Body:       "Pages already enabled",
		})

		// when
		status := entities.StatusCodeOf(err)
		body := entities.BodyOf(err)

		// then
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Pages already enabled", body)
	})

	t.Run("should return zero status and the error text for plain errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.New("boom")

		// when
		status := entities.StatusCodeOf(err)
		body := entities.BodyOf(err)

		// then
		assert.Zero(t, status)
		assert.Equal(t, "boom", body)
		assert.Empty(t, entities.BodyOf(nil))
	})
}
