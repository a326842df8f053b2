package runner

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/meteomark/weather-agent/internal/config"
	"github.com/meteomark/weather-agent/internal/telemetry"
	"github.com/meteomark/weather-agent/tools"
)

type Runner struct {
	Client    *anthropic.Client
	Tools     []tools.ToolDefinition
	Model     anthropic.Model
	MaxTokens int64
}

func New(client *anthropic.Client, cfg config.Config, toolDefs []tools.ToolDefinition) *Runner {
	return &Runner{
		Client:    client,
		Tools:     toolDefs,
		Model:     anthropic.Model(cfg.Model),
		MaxTokens: cfg.MaxTokens,
	}
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// forcedTool names the tool the model must call on this step, or "" for auto.
// The weather tool is forced when the user's utterance plainly asks for
// weather, mirroring the router's tool-choice behaviour for such turns.
func forcedTool(user string) string {
	lower := strings.ToLower(user)
	if strings.Contains(lower, "weather") || strings.Contains(lower, "temperature") {
		return tools.WeatherDefinition.Name
	}
	return ""
}

// RunOneStep sends the full ordered conversation to the provider exactly once
// and dispatches any tool_use blocks in the reply. It returns the provider
// message and the tool_result blocks to append as the next user message.
// Provider and transport errors are returned as-is; there is no retry.
func (r *Runner) RunOneStep(ctx context.Context, conv []anthropic.MessageParam, force string) (*anthropic.Message, []anthropic.ContentBlockParamUnion, error) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	params := anthropic.MessageNewParams{
		Model:     r.Model,
		MaxTokens: r.MaxTokens,
		Messages:  conv,
		Tools:     r.anthropicTools(),
	}
	if force != "" {
		params.ToolChoice = anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: force},
		}
	}

	start := time.Now()
	msg, err := r.Client.Messages.New(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	telemetry.Emit("model_call", map[string]any{
		"turn_id":     turnID,
		"model":       string(r.Model),
		"messages":    len(conv),
		"forced_tool": force,
		"stop_reason": string(msg.StopReason),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	toolResults := []anthropic.ContentBlockParamUnion{}
	for _, block := range msg.Content {
		if v, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			input := json.RawMessage(v.JSON.Input.Raw())
			toolResults = append(toolResults, r.execTool(ctx, v.ID, v.Name, input))
		}
	}
	return msg, toolResults, nil
}

// execTool runs one requested tool and converts the outcome into a
// tool_result block. Unknown names and handler errors become is_error
// results; they never abort the turn.
func (r *Runner) execTool(ctx context.Context, id, name string, input json.RawMessage) anthropic.ContentBlockParamUnion {
	var def *tools.ToolDefinition
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			def = &r.Tools[i]
			break
		}
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)

	emit := func(durationMs int64, inputSize, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   name,
			"duration_ms": durationMs,
			"input_size":  inputSize,
			"output_size": outputSize,
			"turn_id":     turnID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()
	inSize := len(input)

	if def == nil {
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool not found")
		return anthropic.NewToolResultBlock(id, "tool not found", true)
	}

	resp, err := def.Function(input)
	if err != nil {
		// Generic error string in telemetry to avoid leaking raw payloads;
		// the detailed message goes back to the model in the tool result.
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool error")
		return anthropic.NewToolResultBlock(id, err.Error(), true)
	}
	emit(time.Since(start).Milliseconds(), inSize, len(resp), "")
	return anthropic.NewToolResultBlock(id, resp, false)
}
