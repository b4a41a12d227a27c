package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dispatchPhaseMsg carries a dispatcher state change into the program.
type dispatchPhaseMsg struct {
	state domain.DispatchState
	at    time.Time
}

type dispatchDoneMsg struct {
	err error
}

// dispatchSpinnerModel tracks which stage a request is stuck in: queued
// behind the same personality, held by the global rate limit, or waiting on
// the completion endpoint.
type dispatchSpinnerModel struct {
	spinner  spinner.Model
	name     string
	state    domain.DispatchState
	since    time.Time
	now      func() time.Time
	dispatch tea.Cmd
	err      error
	done     bool
}

func newDispatchSpinnerModel(name string, now func() time.Time, dispatch tea.Cmd) dispatchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
	)

	return dispatchSpinnerModel{
		spinner:  s,
		name:     name,
		state:    domain.StateIdle,
		since:    now(),
		now:      now,
		dispatch: dispatch,
	}
}

func (m dispatchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.dispatch)
}

func (m dispatchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case dispatchPhaseMsg:
		m.state = msg.state
		m.since = msg.at
		return m, nil
	case dispatchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m dispatchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	label := m.label()
	if elapsed := m.now().Sub(m.since).Truncate(time.Second); elapsed >= time.Second {
		label = fmt.Sprintf("%s (%s)", label, elapsed)
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), label)
}

func (m dispatchSpinnerModel) label() string {
	switch m.state {
	case domain.StateWaiting:
		return "Waiting for rate limit..."
	case domain.StateInFlight:
		return fmt.Sprintf("Waiting for %s...", m.name)
	default:
		return fmt.Sprintf("Queued behind %s's previous request...", m.name)
	}
}

// runDispatchSpinner shows the request's current phase on output while
// dispatch runs. dispatch must forward phase changes to the given hook.
func runDispatchSpinner(ctx context.Context, output io.Writer, name string, dispatch func(context.Context, func(domain.DispatchState)) error) error {
	var p *tea.Program
	onPhase := func(state domain.DispatchState) {
		p.Send(dispatchPhaseMsg{state: state, at: time.Now()})
	}
	dispatchCmd := func() tea.Msg {
		return dispatchDoneMsg{err: dispatch(ctx, onPhase)}
	}

	p = tea.NewProgram(
		newDispatchSpinnerModel(name, time.Now, dispatchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dispatchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
