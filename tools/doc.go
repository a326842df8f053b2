// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - get_weather: canned forecast lookup with validated (location, date) input.
//   - Invariants: handlers never touch conversation state; validation errors
//     are returned as machine-readable toolcheck.ToolError values.
package tools
