// Package toolcheck polices tool arguments before a capability runs.
package toolcheck

import (
	"encoding/json"
	"fmt"

	"github.com/meteomark/weather-agent/internal/forecast"
)

// ToolError is a machine-readable error body surfaced back to the model as
// the content of an is_error tool result.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact, single-line JSON string to keep tool_result payloads small.
func (e ToolError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Error codes returned by argument validation.
const (
	ErrMissingField = "ERR_MISSING_FIELD"
	ErrWrongType    = "ERR_WRONG_TYPE"
	ErrBadDate      = "ERR_BAD_DATE"
)

// RequireString extracts a required string field from decoded arguments.
// Missing or empty fields and non-string values return a ToolError.
func RequireString(args map[string]json.RawMessage, field string) (string, error) {
	raw, ok := args[field]
	if !ok {
		return "", ToolError{Code: ErrMissingField, Message: fmt.Sprintf("required field %q is missing", field)}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ToolError{Code: ErrWrongType, Message: fmt.Sprintf("field %q must be a string", field)}
	}
	if s == "" {
		return "", ToolError{Code: ErrMissingField, Message: fmt.Sprintf("required field %q is empty", field)}
	}
	return s, nil
}

// RequireDate extracts a required date field and enforces YYYY-MM-DD syntax.
// A malformed date is a validation failure, not a lookup miss.
func RequireDate(args map[string]json.RawMessage, field string) (string, error) {
	s, err := RequireString(args, field)
	if err != nil {
		return "", err
	}
	if !forecast.ValidDate(s) {
		return "", ToolError{Code: ErrBadDate, Message: fmt.Sprintf("field %q must be a calendar date in YYYY-MM-DD format, got %q", field, s)}
	}
	return s, nil
}
