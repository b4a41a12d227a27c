package history

import (
	"fmt"
	"strings"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 80

type RenderOptions struct {
	// Width wraps message bodies; zero means 80 columns.
	Width int
	// Last limits output to the newest N messages; zero shows everything.
	Last int
}

func renderView(personality domain.Personality, messages []domain.Message, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(personalityTitle(personality)),
		s.header.Render(headerLine(messages, opts)),
	}
	if personality.Backstory != "" {
		lines = append(lines, s.backstory.Render(wrap(personality.Backstory, width(opts))))
	}

	if len(messages) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No conversation yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	shown := domain.TrimWindow(messages, opts.Last)
	offset := len(messages) - len(shown)
	for i, message := range shown {
		lines = append(lines, s.section.Render(renderMessage(offset+i+1, personality, message, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(turn int, personality domain.Personality, message domain.Message, opts RenderOptions, s styles) string {
	speaker := s.user.Render("prompt")
	if message.Role == domain.RoleAssistant {
		speaker = s.assistant.Render(speakerName(personality))
	}

	heading := lipgloss.JoinHorizontal(lipgloss.Top, s.turn.Render(fmt.Sprintf("#%d ", turn)), speaker)
	body := s.content.Render(wrap(message.Content, width(opts)-2))

	return lipgloss.JoinVertical(lipgloss.Left, heading, lipgloss.NewStyle().PaddingLeft(2).Render(body))
}

func personalityTitle(personality domain.Personality) string {
	name := speakerName(personality)
	if personality.Summary == "" {
		return name
	}

	return fmt.Sprintf("%s: %s", name, personality.Summary)
}

func speakerName(personality domain.Personality) string {
	if personality.Name != "" {
		return personality.Name
	}

	return string(personality.ID)
}

func headerLine(messages []domain.Message, opts RenderOptions) string {
	if opts.Last > 0 && len(messages) > opts.Last {
		return fmt.Sprintf("messages: %d (showing last %d)", len(messages), opts.Last)
	}

	return fmt.Sprintf("messages: %d", len(messages))
}

func width(opts RenderOptions) int {
	if opts.Width <= 0 {
		return defaultWidth
	}

	return opts.Width
}

// wrap breaks text on word boundaries so no line exceeds limit columns,
// unless a single word is longer than limit.
func wrap(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(word) > limit {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
