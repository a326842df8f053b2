package tools

import (
	"encoding/json"
	"fmt"

	"github.com/meteomark/weather-agent/internal/forecast"
	"github.com/meteomark/weather-agent/internal/toolcheck"
)

type WeatherInput struct {
	Location string `json:"location" jsonschema_description:"The city and state, e.g. San Francisco, CA."`
	Date     string `json:"date" jsonschema_description:"The date to get the weather for, in YYYY-MM-DD format (e.g. 2025-06-19)."`
}

var WeatherDefinition = ToolDefinition{
	Name:        "get_weather",
	Description: "Fetch the weather for a location on a given date. Both location and date are required; the date must be in YYYY-MM-DD format.",
	InputSchema: WeatherInputSchema,
	Function:    GetWeather,
}

var WeatherInputSchema = GenerateSchema[WeatherInput]()

// GetWeather validates the model-proposed arguments and answers from the
// canned forecast table.
//
// Validation failures (missing or non-string fields, malformed dates) return
// a toolcheck.ToolError so the runner surfaces them to the model as is_error
// tool results. A well-formed but unknown (location, date) pair is not an
// error; the table answers with its fallback line.
func GetWeather(input json.RawMessage) (string, error) {
	var args map[string]json.RawMessage
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("invalid get_weather arguments: %w", err)
	}

	location, err := toolcheck.RequireString(args, "location")
	if err != nil {
		return "", err
	}
	date, err := toolcheck.RequireDate(args, "date")
	if err != nil {
		return "", err
	}

	return forecast.Lookup(location, date), nil
}
