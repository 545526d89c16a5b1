package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// RPCError is the JSON-RPC error object reported to MCP clients. Code is one
// of the JSON-RPC codes defined by the MCP protocol (mcp.INVALID_REQUEST,
// mcp.INVALID_PARAMS, mcp.INTERNAL_ERROR).
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string { return e.Message }

// ToRPC converts any value reaching the protocol boundary into an *RPCError.
// It is total and never fails:
//
//   - an *RPCError passes through unchanged, so the conversion is idempotent;
//   - a domain *Error (wrapped or not) picks its JSON-RPC code from the
//     domain code, with the message copied verbatim;
//   - any other error maps to mcp.INTERNAL_ERROR with its message;
//   - a non-error value is coerced to its string form.
func ToRPC(v any) *RPCError {
	switch err := v.(type) {
	case *RPCError:
		return err
	case *Error:
		return &RPCError{Code: rpcCode(err.Code()), Message: err.Message()}
	case error:
		var domainErr *Error
		if stdErrors.As(err, &domainErr) {
			return &RPCError{Code: rpcCode(domainErr.Code()), Message: domainErr.Message()}
		}
		return &RPCError{Code: mcp.INTERNAL_ERROR, Message: err.Error()}
	default:
		return &RPCError{Code: mcp.INTERNAL_ERROR, Message: fmt.Sprint(v)}
	}
}

// rpcCode maps a domain code onto the coarse JSON-RPC categories. Anything
// not listed here, CodeAPI, CodeNetwork, CodeTimeout and CodeUnknown
// included, is an internal error from the client's point of view.
func rpcCode(c Code) int {
	switch c {
	case CodeAuthentication, CodeNotFound, CodeRateLimit:
		return mcp.INVALID_REQUEST
	case CodeValidation:
		return mcp.INVALID_PARAMS
	default:
		return mcp.INTERNAL_ERROR
	}
}
