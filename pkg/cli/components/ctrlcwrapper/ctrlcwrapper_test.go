package ctrlcwrapper

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter counts the messages it sees and records whether it was told the
// program is about to exit.
type counter struct {
	seen        int
	aboutToExit bool
}

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(AboutToExitMsg); ok {
		c.aboutToExit = true
		return c, InnerIsReady
	}
	c.seen++
	return c, nil
}

func (c counter) View() string { return "counter" }

func TestForwardsMessages(t *testing.T) {
	m := New(counter{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, ok := updated.(Model[counter])
	require.True(t, ok)

	assert.Equal(t, 1, m.Unwrap().seen)
	assert.False(t, m.UserWantsToExit())
	assert.Equal(t, "counter", m.View())
}

func TestCtrlC(t *testing.T) {
	m := New(counter{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m, ok := updated.(Model[counter])
	require.True(t, ok)
	require.NotNil(t, cmd)

	assert.True(t, m.UserWantsToExit())
	assert.True(t, m.Unwrap().aboutToExit)

	var a tea.Model = m
	anyModel, ok := a.(Any)
	require.True(t, ok)
	assert.True(t, anyModel.UserWantsToExit())

	// Once the inner model is ready, the program quits.
	_, cmd = m.Update(InnerIsReady())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
