package application

import (
	"fmt"
	"strings"

	"github.com/bnema/persona-relay/internal/domain"
)

const (
	replyInstruction    = "Reply in character with one or two short sentences of spoken dialogue, and nothing else."
	assessmentHeader    = "You notice the following about your surroundings:"
	assessmentTail      = "In a single sentence, say how this makes you feel and what you intend to do about it."
	reactionInstruction = "Respond with one line in the form EMOTION: <one word>; ACTION: <a short physical action>."
	denialInviteFormat  = "If you cannot or will not answer in character, reply with only the word %s."
)

// PromptTemplater wraps a raw situational prompt into one of the fixed
// instructional templates. Every method returns the templated prompt and
// the original one, which is kept for transcript formatting.
type PromptTemplater struct {
	denialInvite string
}

func NewPromptTemplater(sentinel string) PromptTemplater {
	return PromptTemplater{denialInvite: fmt.Sprintf(denialInviteFormat, sentinel)}
}

func (t PromptTemplater) Reply(prompt string) (string, string) {
	return joinPromptParts(prompt, replyInstruction, t.denialInvite), prompt
}

func (t PromptTemplater) AssessVisualCues(prompt string) (string, string) {
	return joinPromptParts(assessmentHeader, prompt, assessmentTail, t.denialInvite), prompt
}

// ReactionInstructions deliberately omits the denial invitation: reactions
// are not expected to be refused.
func (t PromptTemplater) ReactionInstructions(prompt string) (string, string) {
	return joinPromptParts(prompt, reactionInstruction), prompt
}

func (t PromptTemplater) Apply(kind domain.TemplateKind, prompt string) (string, string, error) {
	switch kind {
	case domain.TemplateReply:
		templated, original := t.Reply(prompt)
		return templated, original, nil
	case domain.TemplateVisualCues:
		templated, original := t.AssessVisualCues(prompt)
		return templated, original, nil
	case domain.TemplateReactionHints:
		templated, original := t.ReactionInstructions(prompt)
		return templated, original, nil
	default:
		return "", "", fmt.Errorf("unsupported template kind %q", kind)
	}
}

func joinPromptParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return strings.Join(kept, " ")
}
