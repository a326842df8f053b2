package telemetry

import (
	"context"

	"github.com/meteomark/weather-agent/internal/textstats"
)

// EmitReplyFeatures records size features of an assistant reply. Only derived
// counts are emitted; the reply text itself never reaches the event log.
func EmitReplyFeatures(ctx context.Context, reply string) {
	if !Enabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	s := textstats.Collect(reply)
	Emit("reply_features", map[string]any{
		"turn_id": turnID,
		"reply": map[string]any{
			"bytes": s.Bytes,
			"runes": s.Runes,
			"words": s.Words,
			"lines": s.Lines,
		},
	})
}
