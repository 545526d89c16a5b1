package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func TestToRPC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       any
		wantCode    int
		wantMessage string
	}{
		{
			name:        "authentication maps to invalid request",
			input:       Authentication("Authentication failed in getReseller: invalid bearer token"),
			wantCode:    mcp.INVALID_REQUEST,
			wantMessage: "Authentication failed in getReseller: invalid bearer token",
		},
		{
			name:        "not found maps to invalid request",
			input:       NotFoundMessage("Resource in getDomain"),
			wantCode:    mcp.INVALID_REQUEST,
			wantMessage: "Resource in getDomain",
		},
		{
			name:        "rate limit maps to invalid request",
			input:       RateLimit("Rate limit exceeded in listDomains: quota exhausted"),
			wantCode:    mcp.INVALID_REQUEST,
			wantMessage: "Rate limit exceeded in listDomains: quota exhausted",
		},
		{
			name:        "validation maps to invalid params",
			input:       Validation("domain name is required"),
			wantCode:    mcp.INVALID_PARAMS,
			wantMessage: "domain name is required",
		},
		{
			name:        "api maps to internal error",
			input:       API("API error in createPackage: quota exceeded", 403),
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "API error in createPackage: quota exceeded",
		},
		{
			name:        "network maps to internal error",
			input:       Network("Network error in listDomains: connection refused"),
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "Network error in listDomains: connection refused",
		},
		{
			name:        "timeout maps to internal error",
			input:       Timeout("Request timeout in listDomains"),
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "Request timeout in listDomains",
		},
		{
			name:        "unknown maps to internal error",
			input:       New("something odd"),
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "something odd",
		},
		{
			name:        "wrapped domain error keeps its category",
			input:       fmt.Errorf("tool call: %w", Validation("domain name is required")),
			wantCode:    mcp.INVALID_PARAMS,
			wantMessage: "domain name is required",
		},
		{
			name:        "generic error maps to internal error",
			input:       stdErrors.New("boom"),
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "boom",
		},
		{
			name:        "non-error value is coerced to string",
			input:       42,
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "42",
		},
		{
			name:        "nil is coerced to string",
			input:       nil,
			wantCode:    mcp.INTERNAL_ERROR,
			wantMessage: "<nil>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ToRPC(tc.input)
			require.NotNil(t, got)
			require.Equal(t, tc.wantCode, got.Code)
			require.Equal(t, tc.wantMessage, got.Message)
		})
	}
}

func TestToRPC_IdempotentOnRPCErrors(t *testing.T) {
	t.Parallel()

	rpcErr := ToRPC(Authentication("Authentication failed in getReseller: invalid bearer token"))
	require.Same(t, rpcErr, ToRPC(rpcErr))
	require.Same(t, rpcErr, ToRPC(ToRPC(rpcErr)))
}

func TestClassifyToRPC_EndToEnd(t *testing.T) {
	t.Parallel()

	// A 404 from the provider surfaces to the MCP client as an invalid
	// request whose message names the operation.
	domainErr := Classify("getDomain", &StatusError{Status: 404})
	rpcErr := ToRPC(domainErr)
	require.Equal(t, mcp.INVALID_REQUEST, rpcErr.Code)
	require.Equal(t, "Resource in getDomain", rpcErr.Message)
}
