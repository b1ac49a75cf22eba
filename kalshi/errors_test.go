package kalshi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantType    any
		wantMessage string
	}{
		{
			name:        "400 validation",
			status:      400,
			body:        `{"error":"count must be positive"}`,
			wantType:    &ValidationError{},
			wantMessage: `Validation error: {"error":"count must be positive"}`,
		},
		{
			name:        "401 auth",
			status:      401,
			body:        `{"error":"bad key"}`,
			wantType:    &AuthError{},
			wantMessage: "Authentication failed",
		},
		{
			name:        "404 not found",
			status:      404,
			body:        `{"error":"no such market"}`,
			wantType:    &NotFoundError{},
			wantMessage: "Resource not found",
		},
		{
			name:        "429 rate limit",
			status:      429,
			body:        "",
			wantType:    &RateLimitError{},
			wantMessage: "Rate limit exceeded",
		},
		{
			name:        "500 server error",
			status:      500,
			body:        "internal error",
			wantType:    &ServerError{},
			wantMessage: "Server error: 500 - internal error",
		},
		{
			name:        "503 server error",
			status:      503,
			body:        "maintenance",
			wantType:    &ServerError{},
			wantMessage: "Server error: 503 - maintenance",
		},
		{
			name:        "402 generic API error",
			status:      402,
			body:        "payment required",
			wantType:    &APIError{},
			wantMessage: "kalshi API error (402): API error: payment required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.status, []byte(tt.body))
			require.Error(t, err)
			assert.IsType(t, tt.wantType, err)
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestClassify_SuccessStatuses(t *testing.T) {
	for _, status := range []int{200, 201, 204, 301, 302} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			assert.NoError(t, classify(status, []byte("ignored")))
		})
	}
}

func TestAPIError_CarriesStatusAndBody(t *testing.T) {
	err := classify(402, []byte("payment required"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 402, apiErr.StatusCode)
	assert.Equal(t, "payment required", apiErr.ResponseText)
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "GET /markets", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET /markets")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationError_WithField(t *testing.T) {
	err := &ValidationError{Message: "Validation error: bad count", Field: "count"}
	assert.Equal(t, "Validation error: bad count (field: count)", err.Error())
}
