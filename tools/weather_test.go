package tools_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/meteomark/weather-agent/internal/toolcheck"
	"github.com/meteomark/weather-agent/tools"
)

func TestGetWeather_KnownPair(t *testing.T) {
	out, err := tools.GetWeather(json.RawMessage(`{"location":"San Francisco, CA","date":"2025-06-19"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "sunny") {
		t.Fatalf("expected canned San Francisco report, got %q", out)
	}
}

func TestGetWeather_UnknownPair_ReturnsFallback(t *testing.T) {
	out, err := tools.GetWeather(json.RawMessage(`{"location":"Tromsø","date":"2024-01-01"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Sorry, I don't have weather information for Tromsø") {
		t.Fatalf("expected fallback line, got %q", out)
	}
}

func TestGetWeather_MissingField_IsValidationError(t *testing.T) {
	cases := []string{
		`{"date":"2025-06-19"}`,
		`{"location":"New York"}`,
		`{}`,
	}
	for _, raw := range cases {
		_, err := tools.GetWeather(json.RawMessage(raw))
		var te toolcheck.ToolError
		if !errors.As(err, &te) {
			t.Errorf("input %s: expected ToolError, got %v", raw, err)
			continue
		}
		if te.Code != toolcheck.ErrMissingField {
			t.Errorf("input %s: code %q, want %q", raw, te.Code, toolcheck.ErrMissingField)
		}
	}
}

func TestGetWeather_NonStringField_IsValidationError(t *testing.T) {
	_, err := tools.GetWeather(json.RawMessage(`{"location":7,"date":"2025-06-19"}`))
	var te toolcheck.ToolError
	if !errors.As(err, &te) || te.Code != toolcheck.ErrWrongType {
		t.Fatalf("expected ERR_WRONG_TYPE ToolError, got %v", err)
	}
}

func TestGetWeather_MalformedDate_RejectedNotFallback(t *testing.T) {
	// A bad date must be a validation error, never the unknown-pair fallback.
	_, err := tools.GetWeather(json.RawMessage(`{"location":"San Francisco","date":"next tuesday"}`))
	var te toolcheck.ToolError
	if !errors.As(err, &te) || te.Code != toolcheck.ErrBadDate {
		t.Fatalf("expected ERR_BAD_DATE ToolError, got %v", err)
	}
}

func TestGetWeather_NonObjectInput(t *testing.T) {
	if _, err := tools.GetWeather(json.RawMessage(`"not an object"`)); err == nil {
		t.Fatal("expected error for non-object input")
	}
}

func TestRegistry_SingleWeatherTool(t *testing.T) {
	defs := tools.Registry()
	if len(defs) != 1 {
		t.Fatalf("unexpected number of tools: got %d want 1", len(defs))
	}
	if defs[0].Name != "get_weather" {
		t.Fatalf("unexpected tool name: %q", defs[0].Name)
	}
}

func TestWeatherInputSchema_DeclaresBothFields(t *testing.T) {
	props := tools.WeatherInputSchema.Properties
	b, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("marshal schema properties: %v", err)
	}
	for _, field := range []string{"location", "date"} {
		if !strings.Contains(string(b), `"`+field+`"`) {
			t.Errorf("schema missing field %q: %s", field, b)
		}
	}
}
