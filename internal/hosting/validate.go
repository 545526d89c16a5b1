package hosting

import (
	"fmt"

	"github.com/hostfleet/hostmcp/internal/errors"
)

// ValidateResponse guards against malformed success responses before callers
// trust them. The provider occasionally reports failures inside a 200 body,
// either as an "error" field or as a literal status of "error".
//
// Returns nil when the body looks healthy, otherwise an API_ERROR domain
// error. The op label names the operation and is used only in messages.
func ValidateResponse(op string, body map[string]any) error {
	if len(body) == 0 {
		return errors.API(fmt.Sprintf("Empty response from %s", op), 500)
	}

	if errVal, ok := body["error"]; ok {
		status := 500
		if s, ok := body["status"].(float64); ok {
			status = int(s)
		}
		return errors.API(fmt.Sprintf("API returned error in %s: %v", op, errVal), status)
	}

	if status, ok := body["status"].(string); ok && status == "error" {
		msg := "Unknown error"
		if m, ok := body["message"].(string); ok && m != "" {
			msg = m
		}
		return errors.API(fmt.Sprintf("API returned error status in %s: %s", op, msg), 500)
	}

	return nil
}
