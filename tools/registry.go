package tools

// Registry returns all tool definitions wired for the agent. The slice is
// rebuilt on every call so callers cannot mutate the registered set.
func Registry() []ToolDefinition {
	return []ToolDefinition{WeatherDefinition}
}
