package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hostfleet/hostmcp/internal/errors"
)

// validateArgs checks tool call arguments against the tool's own input
// schema. Failures are reported as VALIDATION_ERROR domain errors, so the
// MCP client sees an invalid-params category rather than an internal error.
func validateArgs(tool mcp.Tool, args map[string]any) error {
	schemaJSON, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return errors.Validation(fmt.Sprintf("invalid input schema for %s: %v", tool.Name, err))
	}

	if args == nil {
		args = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		return errors.Validation(fmt.Sprintf("invalid arguments for %s: %v", tool.Name, err))
	}

	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			descriptions = append(descriptions, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
		}
		return errors.Validation(fmt.Sprintf("invalid arguments for %s: %s", tool.Name, strings.Join(descriptions, "; ")))
	}

	return nil
}
