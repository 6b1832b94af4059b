package ctrlcwrapper

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cleanupGrace is how long the inner model gets to tidy up after ctrl+C
// before the program exits anyway.
const cleanupGrace = 500 * time.Millisecond

// Model wraps another model and ends the program when the user presses
// ctrl+C, remembering that they did so.
type Model[T tea.Model] struct {
	userWantsToExit bool

	inner T
}

// Any is satisfied by every Model regardless of the inner type, so callers can
// check for ctrl+C without knowing what was wrapped.
type Any interface {
	UserWantsToExit() bool
}

// AboutToExitMsg is sent to the inner model when the user presses ctrl+C.
type AboutToExitMsg struct{}

// InnerIsReady is a tea.Cmd the inner model returns in response to
// AboutToExitMsg once it has finished cleaning up, so the program can exit
// without waiting out the grace period.
func InnerIsReady() tea.Msg {
	return innerIsReadyMsg{}
}

type innerIsReadyMsg struct{}

type graceExpiredMsg struct{}

// New wraps inner.
func New[T tea.Model](inner T) Model[T] {
	return Model[T]{
		inner: inner,
	}
}

// Unwrap returns the inner model with its original type.
func (m Model[T]) Unwrap() T {
	return m.inner
}

// UserWantsToExit reports whether the user pressed ctrl+C.
func (m Model[T]) UserWantsToExit() bool {
	return m.userWantsToExit
}

func (m Model[T]) Init() tea.Cmd {
	return m.inner.Init()
}

func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.userWantsToExit = true

			cmd := m.forward(AboutToExitMsg{})
			grace := tea.Tick(cleanupGrace, func(time.Time) tea.Msg {
				return graceExpiredMsg{}
			})
			return m, tea.Batch(cmd, grace)
		}

	case innerIsReadyMsg, graceExpiredMsg:
		return m, tea.Quit
	}

	cmd := m.forward(msg)
	return m, cmd
}

func (m *Model[T]) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := m.inner.Update(msg)
	inner, ok := updated.(T)
	if !ok {
		// The inner model changed type, which none of ours do.
		return nil
	}

	m.inner = inner
	return cmd
}

func (m Model[T]) View() string {
	return m.inner.View()
}
