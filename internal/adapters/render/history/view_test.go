package history

import (
	"strings"
	"testing"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ada = domain.Personality{
	ID:        "ada",
	Name:      "Ada",
	Summary:   "a retired sailor",
	Backstory: "Grew up on the docks.",
}

func TestRenderConversation(t *testing.T) {
	output, err := Render(ada, []domain.Message{
		domain.NewUserMessage("Who goes there?"),
		domain.NewAssistantMessage("Just an old sailor."),
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Ada: a retired sailor")
	assert.Contains(t, output, "messages: 2")
	assert.Contains(t, output, "Grew up on the docks.")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "prompt")
	assert.Contains(t, output, "Who goes there?")
	assert.Contains(t, output, "#2")
	assert.Contains(t, output, "Just an old sailor.")
	assert.Less(t, strings.Index(output, "Who goes there?"), strings.Index(output, "Just an old sailor."))
}

func TestRenderEmptyConversation(t *testing.T) {
	output, err := Render(domain.Personality{ID: "bob"}, nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "bob")
	assert.Contains(t, output, "messages: 0")
	assert.Contains(t, output, "No conversation yet.")
}

func TestRenderLastKeepsTurnNumbers(t *testing.T) {
	output, err := Render(ada, []domain.Message{
		domain.NewUserMessage("one"),
		domain.NewAssistantMessage("two"),
		domain.NewUserMessage("three"),
	}, RenderOptions{Last: 1})

	require.NoError(t, err)
	assert.Contains(t, output, "messages: 3 (showing last 1)")
	assert.Contains(t, output, "#3")
	assert.Contains(t, output, "three")
	assert.NotContains(t, output, "#1")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "the quick\nbrown fox", wrap("the quick brown fox", 10))
	assert.Equal(t, "unbreakableword\nx", wrap("unbreakableword x", 5))
	assert.Equal(t, "a\n\nb", wrap("a\n\nb", 10))
	assert.Equal(t, "as is", wrap("as is", 0))
}
