package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/meteomark/weather-agent/internal/history"
	"github.com/meteomark/weather-agent/internal/telemetry"
)

// RunTurn appends the user's utterance to the log and drives the step/route
// cycle to completion: model step, then either execute the requested tools
// and loop, or end. It returns the assistant's visible text for the turn.
//
// There is deliberately no iteration cap; only a provider error or context
// cancellation interrupts a model that keeps requesting tools.
func (r *Runner) RunTurn(ctx context.Context, log *history.Log, user string) (string, error) {
	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}

	log.Append(anthropic.NewUserMessage(anthropic.NewTextBlock(user)))

	// Tool choice is forced only for the first step of a plainly
	// weather-shaped utterance; follow-up steps run on auto so the model
	// can synthesise an answer from the tool result.
	force := forcedTool(user)

	var reply string
	for {
		msg, toolResults, err := r.RunOneStep(ctx, log.Messages(), force)
		if err != nil {
			return "", err
		}
		force = ""

		log.Append(msg.ToParam())
		for _, block := range msg.Content {
			if tb, ok := block.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
				if reply == "" {
					reply = tb.Text
				} else {
					reply += "\n" + tb.Text
				}
			}
		}

		decision := Route(msg)
		telemetry.Emit("route_decision", map[string]any{
			"turn_id":      turnID,
			"decision":     decision.String(),
			"tool_results": len(toolResults),
		})
		if decision == End {
			break
		}

		log.Append(anthropic.NewUserMessage(toolResults...))
		if err := log.Validate(); err != nil {
			return "", err
		}
	}

	telemetry.EmitReplyFeatures(ctx, reply)
	return reply, nil
}
