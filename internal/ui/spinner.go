package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunSpinner runs a minimal Bubble Tea spinner while executing the given
// action. The UI exits when the action completes and returns the action's
// error.
func RunSpinner(ctx context.Context, title string, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newSpinnerModel(title)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	go func() {
		p.Send(actionDoneMsg{err: action()})
	}()
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return m.err
}

type actionDoneMsg struct{ err error }

type spinnerModel struct {
	title string
	spin  spinner.Model
	done  bool
	err   error
	style lipgloss.Style
}

func newSpinnerModel(title string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &spinnerModel{
		title: title,
		spin:  s,
		style: lipgloss.NewStyle().Padding(0, 1),
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Allow cancel via keyboard
			m.err = fmt.Errorf("check canceled")
			m.done = true
			return m, tea.Quit
		}
	case actionDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return m.style.Render("✗ " + m.title + " (" + m.err.Error() + ")\n")
		}
		return m.style.Render("✓ " + m.title + "\n")
	}
	return m.style.Render(m.spin.View() + " " + m.title)
}
