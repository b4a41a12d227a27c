package history

import (
	"errors"
	"io"

	"github.com/bnema/persona-relay/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	personality domain.Personality
	messages    []domain.Message
	opts        RenderOptions
	styles      styles
	output      string
}

func newModel(personality domain.Personality, messages []domain.Message, opts RenderOptions) model {
	return model{
		personality: personality,
		messages:    messages,
		opts:        opts,
		styles:      newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.personality, m.messages, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out a personality's conversation as a styled transcript.
func Render(personality domain.Personality, messages []domain.Message, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(personality, messages, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
