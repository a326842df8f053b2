package history_test

import (
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/meteomark/weather-agent/internal/history"
)

// Text block constructor
func T(text string) anthropic.ContentBlockParamUnion {
	return anthropic.ContentBlockParamUnion{OfText: &anthropic.TextBlockParam{Text: text}}
}

// Tool-use block constructor
func TU(id string) anthropic.ContentBlockParamUnion {
	return anthropic.ContentBlockParamUnion{OfToolUse: &anthropic.ToolUseBlockParam{ID: id}}
}

// Tool-result block constructor
func TR(id string) anthropic.ContentBlockParamUnion {
	return anthropic.ContentBlockParamUnion{OfToolResult: &anthropic.ToolResultBlockParam{ToolUseID: id}}
}

func logOf(msgs ...anthropic.MessageParam) *history.Log {
	l := &history.Log{}
	for _, m := range msgs {
		l.Append(m)
	}
	return l
}

func TestLog_AppendIsMonotonic(t *testing.T) {
	l := &history.Log{}
	for i := 1; i <= 5; i++ {
		l.Append(anthropic.NewUserMessage(T("x")))
		if l.Len() != i {
			t.Fatalf("after %d appends Len=%d", i, l.Len())
		}
	}
}

func TestLog_MessagesReturnsCopy(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("one")),
		anthropic.NewAssistantMessage(T("two")),
	)
	view := l.Messages()
	view[0] = anthropic.NewUserMessage(T("mutated"))

	fresh := l.Messages()
	if tb := fresh[0].Content[0].OfText; tb == nil || tb.Text != "one" {
		t.Fatal("mutating the returned slice leaked into the log")
	}
}

func TestLog_Last(t *testing.T) {
	l := &history.Log{}
	if _, ok := l.Last(); ok {
		t.Fatal("empty log should report no last message")
	}
	l.Append(anthropic.NewUserMessage(T("hello")))
	last, ok := l.Last()
	if !ok || last.Role != anthropic.MessageParamRoleUser {
		t.Fatalf("unexpected last message: %+v ok=%t", last, ok)
	}
}

func TestValidate_CleanToolRoundTrip(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("weather?")),
		anthropic.NewAssistantMessage(TU("a")),
		anthropic.NewUserMessage(TR("a")),
		anthropic.NewAssistantMessage(T("sunny")),
	)
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}
}

func TestValidate_ParallelToolUses(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("q")),
		anthropic.NewAssistantMessage(TU("a"), TU("b")),
		anthropic.NewUserMessage(TR("a"), TR("b"), T("trailing text allowed")),
	)
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}
}

func TestValidate_MissingResult(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("q")),
		anthropic.NewAssistantMessage(TU("a"), TU("b")),
		anthropic.NewUserMessage(TR("a")),
	)
	err := l.Validate()
	if err == nil || !strings.Contains(err.Error(), "no tool_result") {
		t.Fatalf("expected missing-result violation, got %v", err)
	}
}

func TestValidate_ExtraResult(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("q")),
		anthropic.NewAssistantMessage(TU("a")),
		anthropic.NewUserMessage(TR("a"), TR("ghost")),
	)
	err := l.Validate()
	if err == nil || !strings.Contains(err.Error(), "answers no request") {
		t.Fatalf("expected extra-result violation, got %v", err)
	}
}

func TestValidate_OrphanResult(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(TR("a")),
	)
	err := l.Validate()
	if err == nil || !strings.Contains(err.Error(), "orphan tool_result") {
		t.Fatalf("expected orphan violation, got %v", err)
	}
}

func TestValidate_DanglingToolUse(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("q")),
		anthropic.NewAssistantMessage(TU("a")),
	)
	err := l.Validate()
	if err == nil || !strings.Contains(err.Error(), "no following result message") {
		t.Fatalf("expected dangling tool_use violation, got %v", err)
	}
}

func TestValidate_TextBeforeResultIsInvalid(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("q")),
		anthropic.NewAssistantMessage(TU("a")),
		anthropic.NewUserMessage(T("note first"), TR("a")),
	)
	err := l.Validate()
	if err == nil || !strings.Contains(err.Error(), "mixes text before tool_result") {
		t.Fatalf("expected ordering violation, got %v", err)
	}
}

func TestValidate_PlainConversation(t *testing.T) {
	l := logOf(
		anthropic.NewUserMessage(T("fun fact about giraffes?")),
		anthropic.NewAssistantMessage(T("their necks are long")),
	)
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}
}
