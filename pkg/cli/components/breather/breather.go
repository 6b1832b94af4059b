package breather

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Model renders a glyph whose brightness slowly pulses, to show the program
// is waiting on the user.
type Model struct {
	Glyph string

	lightness float64
	style     lipgloss.Style
}

// New returns a breather showing the given glyph.
func New(glyph string) Model {
	return Model{
		Glyph:     glyph,
		lightness: midpoint,
		style:     lipgloss.NewStyle().Bold(true),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}

	m.lightness = t.lightness()
	return m, tick()
}

func (m Model) View() string {
	c := colorful.Hsl(0, 0, m.lightness)
	return m.style.Foreground(lipgloss.Color(c.Hex())).Render(m.Glyph)
}

// ViewStatic renders the glyph without animation.
func (m Model) ViewStatic() string {
	return m.style.Render(m.Glyph)
}

// TickMsg advances the animation.
type TickMsg time.Time

func (t TickMsg) lightness() float64 {
	seconds := float64(time.Time(t).UnixNano()) / 1e9
	return amplitude*math.Sin(seconds*2*math.Pi/period) + midpoint
}

func tick() tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

const (
	frame = 33 * time.Millisecond

	period    = 2.3 // seconds
	midpoint  = 0.55
	amplitude = 0.2
)
