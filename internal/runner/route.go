package runner

import "github.com/anthropics/anthropic-sdk-go"

// Decision is the two-state routing outcome after a model step.
type Decision int

const (
	// End terminates the turn; the newest assistant message is the answer.
	End Decision = iota

	// Continue executes the requested tools and runs another model step.
	Continue
)

func (d Decision) String() string {
	if d == Continue {
		return "continue"
	}
	return "end"
}

// Route inspects the newest assistant message: Continue if and only if it
// carries at least one tool_use block, otherwise End.
func Route(msg *anthropic.Message) Decision {
	for _, block := range msg.Content {
		if _, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			return Continue
		}
	}
	return End
}
