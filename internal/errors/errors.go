// Package errors defines the domain error model used throughout the application.
// Every failure reported to an MCP client or gateway caller is represented as an
// *Error carrying a stable machine-readable code, so the boundary translators can
// pick a protocol error category without inspecting free-text messages.
//
// NOTE: Important for developers
// The set of codes below is closed. When adding a new code here, you MUST decide
// how it maps at both boundaries:
// 1. Add it to rpcCode (internal/errors/rpc.go) or it will default to INTERNAL_ERROR.
// 2. Add it to mapError (internal/gateway/server.go) or it will default to HTTP 500.
// 3. Add test cases to TestToRPC and TestMapError.
package errors

// Code classifies a domain error. Codes are stable and machine-readable;
// no value outside this enumeration is ever produced.
type Code string

const (
	// CodeAuthentication indicates the provider rejected our credentials (HTTP 401).
	CodeAuthentication Code = "AUTHENTICATION_ERROR"

	// CodeValidation indicates caller-supplied input failed validation before
	// any request was made (HTTP 400).
	CodeValidation Code = "VALIDATION_ERROR"

	// CodeAPI indicates the provider returned an error response that is not
	// covered by a more specific code. The originating HTTP status is retained.
	CodeAPI Code = "API_ERROR"

	// CodeNotFound indicates the requested resource does not exist (HTTP 404).
	CodeNotFound Code = "NOT_FOUND"

	// CodeRateLimit indicates the provider throttled the request (HTTP 429).
	// The limit is reported, never enforced on our side.
	CodeRateLimit Code = "RATE_LIMIT"

	// CodeNetwork indicates the provider host could not be reached at all
	// (connection refused, DNS failure). No HTTP status exists.
	CodeNetwork Code = "NETWORK_ERROR"

	// CodeTimeout indicates the outbound call was aborted client-side before
	// a response arrived.
	CodeTimeout Code = "TIMEOUT_ERROR"

	// CodeUnknown is the fallback for failures that match nothing else.
	CodeUnknown Code = "UNKNOWN_ERROR"
)

// Error is the domain failure value. It is immutable once constructed:
// fields are set by the constructors below and only exposed through accessors.
type Error struct {
	message    string
	code       Code
	statusCode int // 0 when the error was not derived from an HTTP response
}

// New constructs an Error with the fallback CodeUnknown.
func New(message string) *Error {
	return &Error{message: message, code: CodeUnknown}
}

// Authentication reports rejected credentials.
func Authentication(message string) *Error {
	return &Error{message: message, code: CodeAuthentication, statusCode: 401}
}

// Validation reports invalid caller input.
func Validation(message string) *Error {
	return &Error{message: message, code: CodeValidation, statusCode: 400}
}

// API reports a provider error response with the status it arrived with.
func API(message string, statusCode int) *Error {
	return &Error{message: message, code: CodeAPI, statusCode: statusCode}
}

// NotFound reports a missing resource, formatting the message as
// "<resource> not found".
func NotFound(resource string) *Error {
	return &Error{message: resource + " not found", code: CodeNotFound, statusCode: 404}
}

// NotFoundMessage reports a missing resource with a caller-supplied message,
// bypassing the NotFound template.
func NotFoundMessage(message string) *Error {
	return &Error{message: message, code: CodeNotFound, statusCode: 404}
}

// RateLimit reports provider-side throttling.
func RateLimit(message string) *Error {
	return &Error{message: message, code: CodeRateLimit, statusCode: 429}
}

// Network reports an unreachable provider host.
func Network(message string) *Error {
	return &Error{message: message, code: CodeNetwork}
}

// Timeout reports a client-side abort of the outbound call.
func Timeout(message string) *Error {
	return &Error{message: message, code: CodeTimeout}
}

// Error implements the built-in error interface. The returned text is the
// message alone; the code travels separately so boundary translators and
// loggers can use it without parsing.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Message returns the human-readable description.
func (e *Error) Message() string { return e.message }

// Code returns the stable machine-readable classification.
func (e *Error) Code() Code { return e.code }

// StatusCode returns the HTTP status the error was derived from,
// and false when no transport status exists.
func (e *Error) StatusCode() (int, bool) {
	return e.statusCode, e.statusCode != 0
}
