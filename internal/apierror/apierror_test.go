package apierror

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalShape(t *testing.T) {
	payload, err := json.Marshal(NotFound("car not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"car not found"}}`, string(payload))
}

func TestStatusCodeStaysOutOfBody(t *testing.T) {
	payload, err := json.Marshal(Internal(""))
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "500")
}

func TestDefaultMessages(t *testing.T) {
	cases := []struct {
		err     *Error
		status  int
		code    string
		message string
	}{
		{Internal(""), 500, "INTERNAL_ERROR", "An internal error occurred"},
		{BadRequest(""), 400, "BAD_REQUEST", "Bad request"},
		{NotFound(""), 404, "NOT_FOUND", "Resource not found"},
		{Conflict(""), 409, "CONFLICT", "Resource conflict"},
		{Forbidden(""), 403, "FORBIDDEN", "Access forbidden"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode)
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.message, tc.err.Message)
	}
}

func TestCustomMessageOverridesDefault(t *testing.T) {
	err := BadRequest("year: must be between 1886 and 3000")
	assert.Equal(t, "year: must be between 1886 and 3000", err.Message)
	assert.Equal(t, "year: must be between 1886 and 3000", err.Error())
}
