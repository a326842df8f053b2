// Package history holds the append-only conversation state for one session.
//
// The log is the only shared structure in the turn loop and is mutated
// exclusively by appending; prior messages are never rewritten. Validate
// enforces the correlation invariant between tool_use requests and their
// tool_result answers.
package history

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Log is an append-only ordered sequence of provider messages.
// The zero value is an empty, usable log.
type Log struct {
	msgs []anthropic.MessageParam
}

// Append adds one message to the end of the log.
func (l *Log) Append(m anthropic.MessageParam) {
	l.msgs = append(l.msgs, m)
}

// Len returns the number of messages appended so far.
func (l *Log) Len() int { return len(l.msgs) }

// Last returns the newest message, if any.
func (l *Log) Last() (anthropic.MessageParam, bool) {
	if len(l.msgs) == 0 {
		return anthropic.MessageParam{}, false
	}
	return l.msgs[len(l.msgs)-1], true
}

// Messages returns a copy of the ordered log. Callers may slice and pass it
// to the provider but cannot mutate the log through it.
func (l *Log) Messages() []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(l.msgs))
	copy(out, l.msgs)
	return out
}

// Validate checks the correlation invariant over the whole log:
//   - every assistant message carrying tool_use blocks is immediately
//     followed by a user message whose leading tool_result blocks cover
//     exactly those tool_use IDs;
//   - no tool_result appears without a preceding matching tool_use;
//   - within a result message, tool_result blocks precede any text.
//
// The first violation found is returned with the offending message index.
func (l *Log) Validate() error {
	for i := 0; i < len(l.msgs); {
		m := l.msgs[i]
		if m.Role == anthropic.MessageParamRoleAssistant {
			useIDs := toolUseIDs(m)
			if len(useIDs) > 0 {
				if i+1 >= len(l.msgs) || l.msgs[i+1].Role != anthropic.MessageParamRoleUser {
					return fmt.Errorf("history: tool_use at message %d has no following result message", i)
				}
				resultIDs, ordered := leadingToolResultIDs(l.msgs[i+1])
				if !ordered {
					return fmt.Errorf("history: message %d mixes text before tool_result blocks", i+1)
				}
				for id := range useIDs {
					if _, ok := resultIDs[id]; !ok {
						return fmt.Errorf("history: tool_use %q at message %d has no tool_result", id, i)
					}
				}
				for id := range resultIDs {
					if _, ok := useIDs[id]; !ok {
						return fmt.Errorf("history: tool_result %q at message %d answers no request", id, i+1)
					}
				}
				i += 2
				continue
			}
		}
		if resultIDs, _ := leadingToolResultIDs(m); len(resultIDs) > 0 {
			// A result message is only legal directly after its request,
			// which the branch above consumes.
			return fmt.Errorf("history: orphan tool_result at message %d", i)
		}
		i++
	}
	return nil
}

// toolUseIDs returns the tool_use IDs present in an assistant message.
func toolUseIDs(m anthropic.MessageParam) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, blk := range m.Content {
		if tu := blk.OfToolUse; tu != nil && tu.ID != "" {
			ids[tu.ID] = struct{}{}
		}
	}
	return ids
}

// leadingToolResultIDs collects tool_result IDs from the leading segment of a
// message. ordered is false when a tool_result appears after a non-result
// block; trailing text after the results is allowed and ignored.
func leadingToolResultIDs(m anthropic.MessageParam) (ids map[string]struct{}, ordered bool) {
	ids = make(map[string]struct{})
	seenNonResult := false
	for _, blk := range m.Content {
		if tr := blk.OfToolResult; tr != nil {
			if seenNonResult {
				return ids, false
			}
			if tr.ToolUseID != "" {
				ids[tr.ToolUseID] = struct{}{}
			}
			continue
		}
		seenNonResult = true
	}
	return ids, true
}
