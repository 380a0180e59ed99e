package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConflictError_WrapsSentinelAndCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")

	err := NewConflictError("Email already registered", cause)

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeConflict, ErrorCode(err))
	assert.Equal(t, "Email already registered", err.Message)
}

func TestNewConflictError_WithoutCause(t *testing.T) {
	err := NewConflictError("Username already taken", nil)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, CodeConflict, ErrorCode(err))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, ErrorCode(NewNotFoundError("Post", 7)))
	assert.Equal(t, CodeValidation, ErrorCode(NewValidationError("bad")))
	assert.Equal(t, CodeInternal, ErrorCode(NewInternalError(errors.New("boom"))))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
	assert.Equal(t, "", ErrorCode(nil))
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		status          int
		expectedError   string
		expectedCode    string
		expectedDetails string
	}{
		{
			name:          "not found",
			err:           NewNotFoundError("Post", 3),
			status:        fiber.StatusNotFound,
			expectedError: "Post with ID 3 not found",
			expectedCode:  CodeNotFound,
		},
		{
			name:          "internal hides details",
			err:           NewInternalError(errors.New("connection reset")),
			status:        fiber.StatusInternalServerError,
			expectedError: "Internal server error",
			expectedCode:  CodeInternal,
		},
		{
			name:          "plain error",
			err:           errors.New("something odd"),
			status:        fiber.StatusBadRequest,
			expectedError: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondWithError(c, tt.status, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.expectedError, got.Error)
			assert.Equal(t, tt.expectedCode, got.Code)
			assert.Equal(t, tt.expectedDetails, got.Details)
		})
	}
}
