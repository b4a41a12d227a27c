package application

import (
	"testing"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoChoiceResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1767225600,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "message": {"role": "assistant", "content": "first"}, "finish_reason": "stop"},
    {"index": 1, "message": {"role": "assistant", "content": "second"}, "finish_reason": "stop"}
  ],
  "usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
}`

func TestResponseInterpreterUsesFirstChoice(t *testing.T) {
	t.Parallel()

	interpretation, err := NewResponseInterpreter("REFUSE").Interpret([]byte(twoChoiceResponse))
	require.NoError(t, err)

	assert.Equal(t, Interpretation{
		Content:      "first",
		FinishReason: "stop",
		Model:        "gpt-4o-mini",
		Usage:        domain.Usage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15},
	}, interpretation)
}

func TestResponseInterpreterParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty body", raw: ""},
		{name: "whitespace body", raw: "  \n"},
		{name: "malformed json", raw: `{"choices": [`},
		{name: "no choices", raw: `{"choices": []}`},
		{name: "missing choices", raw: `{"id": "x"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewResponseInterpreter("REFUSE").Interpret([]byte(tc.raw))
			require.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestResponseInterpreterIsDenied(t *testing.T) {
	t.Parallel()

	interpreter := NewResponseInterpreter("REFUSE")

	assert.True(t, interpreter.IsDenied("I cannot do that. REFUSE"))
	assert.True(t, interpreter.IsDenied("xxREFUSExx"))
	assert.False(t, interpreter.IsDenied("I refuse"))
	assert.False(t, NewResponseInterpreter("").IsDenied("anything"))
}

func TestResponseInterpreterSanitizeRemovesEveryDoubleQuote(t *testing.T) {
	t.Parallel()

	sanitized := NewResponseInterpreter("REFUSE").SanitizeForDelivery(`"Well," she said, "it's "late".`)

	assert.Equal(t, `Well, she said, it's late.`, sanitized)
	assert.NotContains(t, sanitized, `"`)
}
