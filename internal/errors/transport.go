package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// StatusError carries a non-2xx provider response through the error chain so
// Classify can translate it. The hosting client constructs one at the point a
// response is received; nothing outside this package and the client should
// need to touch it.
type StatusError struct {
	// Status is the HTTP status code of the provider response.
	Status int

	// StatusText is the textual form of Status, e.g. "Unauthorized".
	StatusText string

	// Message is the "message" field of the provider error body, when present.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.providerMessage())
}

// providerMessage resolves the most specific description available:
// body message, then status text, then a fixed fallback.
func (e *StatusError) providerMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusText != "" {
		return e.StatusText
	}
	return "Unknown API error"
}

// Classify converts a failed outbound call into exactly one domain Error.
// The op label names the operation being attempted and is used only for
// message formatting. Classification is ordered, first match wins:
//
//  1. a response status, when the failure carries one;
//  2. connection refused / host not found;
//  3. client-side abort or timeout;
//  4. everything else, including nil.
//
// Classify never returns nil and must not itself fail on malformed input;
// missing detail degrades to the literal fallbacks above.
func Classify(op string, err error) *Error {
	var statusErr *StatusError
	if stdErrors.As(err, &statusErr) {
		msg := statusErr.providerMessage()
		switch statusErr.Status {
		case http.StatusUnauthorized:
			return Authentication(fmt.Sprintf("Authentication failed in %s: %s", op, msg))
		case http.StatusNotFound:
			// The message names the operation, not the resource that was
			// requested. Existing callers match on this exact text.
			return NotFoundMessage(fmt.Sprintf("Resource in %s", op))
		case http.StatusTooManyRequests:
			return RateLimit(fmt.Sprintf("Rate limit exceeded in %s: %s", op, msg))
		default:
			return API(fmt.Sprintf("API error in %s: %s", op, msg), statusErr.Status)
		}
	}

	var dnsErr *net.DNSError
	switch {
	case stdErrors.Is(err, syscall.ECONNREFUSED):
		return Network(fmt.Sprintf("Network error in %s: %s", op, err.Error()))
	case stdErrors.As(err, &dnsErr) && dnsErr.IsNotFound:
		return Network(fmt.Sprintf("Network error in %s: %s", op, err.Error()))
	}

	if isTimeout(err) {
		return Timeout(fmt.Sprintf("Request timeout in %s", op))
	}

	if err == nil {
		return New(fmt.Sprintf("Unexpected error in %s: unknown failure", op))
	}
	return New(fmt.Sprintf("Unexpected error in %s: %s", op, err.Error()))
}

// isTimeout reports whether err represents a client-side abort: a context
// deadline or cancellation, or any transport error that declares itself a
// timeout.
func isTimeout(err error) bool {
	if stdErrors.Is(err, context.DeadlineExceeded) || stdErrors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return stdErrors.As(err, &netErr) && netErr.Timeout()
}
