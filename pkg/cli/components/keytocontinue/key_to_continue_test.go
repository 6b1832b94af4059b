package keytocontinue

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/funcdemo/intake/pkg/cli/components/ctrlcwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	m, ok := updated.(Model)
	require.True(t, ok)
	return m, cmd
}

func TestAnyKey(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := New("Press any key to end.")
			assert.Contains(t, m.View(), "Press any key to end.")

			m, cmd := update(t, m, key)
			assert.True(t, m.Pressed)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Contains(t, m.View(), "Press any key to end.")
		})
	}
}

func TestAboutToExit(t *testing.T) {
	m, cmd := update(t, New("Press any key to end."), ctrlcwrapper.AboutToExitMsg{})
	assert.False(t, m.Pressed)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.Equal(t, ctrlcwrapper.InnerIsReady(), cmd())
}
