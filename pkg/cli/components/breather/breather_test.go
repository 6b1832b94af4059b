package breather

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestLightnessStaysInRange(t *testing.T) {
	start := time.Unix(1700000000, 0)
	for i := 0; i < 200; i++ {
		l := TickMsg(start.Add(time.Duration(i) * frame)).lightness()
		assert.GreaterOrEqual(t, l, midpoint-amplitude-1e-9)
		assert.LessOrEqual(t, l, midpoint+amplitude+1e-9)
	}
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	m := New(">")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, m, updated)

	updated, cmd = m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Contains(t, updated.View(), ">")
	assert.Contains(t, updated.ViewStatic(), ">")
}
