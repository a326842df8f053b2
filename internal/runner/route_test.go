package runner_test

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/meteomark/weather-agent/internal/runner"
)

func messageFromJSON(t *testing.T, raw string) *anthropic.Message {
	t.Helper()
	var msg anthropic.Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("prep message: %v", err)
	}
	return &msg
}

func TestRoute_ContinueIffToolUsePresent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want runner.Decision
	}{
		{
			name: "text only ends",
			raw:  `{"role":"assistant","content":[{"type":"text","text":"done"}]}`,
			want: runner.End,
		},
		{
			name: "empty content ends",
			raw:  `{"role":"assistant","content":[]}`,
			want: runner.End,
		},
		{
			name: "tool use continues",
			raw:  `{"role":"assistant","content":[{"type":"tool_use","id":"a","name":"get_weather","input":{}}]}`,
			want: runner.Continue,
		},
		{
			name: "text plus tool use continues",
			raw:  `{"role":"assistant","content":[{"type":"text","text":"checking"},{"type":"tool_use","id":"b","name":"get_weather","input":{}}]}`,
			want: runner.Continue,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runner.Route(messageFromJSON(t, tc.raw)); got != tc.want {
				t.Fatalf("Route = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecision_String(t *testing.T) {
	if runner.Continue.String() != "continue" || runner.End.String() != "end" {
		t.Fatalf("unexpected decision strings: %q %q", runner.Continue, runner.End)
	}
}
