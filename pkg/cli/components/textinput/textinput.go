package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/funcdemo/intake/pkg/cli/components/ctrlcwrapper"
	"github.com/funcdemo/intake/pkg/cli/styles"
)

// Model asks a single question and collects a line of freeform text. It wraps
// Charm's textinput.Model so it can be run as its own tea.Program; the
// program quits once the user presses enter.
type Model struct {
	// Prompt is the question shown above the input.
	Prompt string

	// Inner is the underlying text input.
	Inner textinput.Model

	// Submitted is true once the user has pressed enter.
	Submitted bool

	aboutToExit bool
}

// New returns a focused text input for the given prompt.
func New(prompt string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Secondary()
	ti.Focus()

	return Model{
		Prompt: prompt,
		Inner:  ti,
	}
}

// Value returns the text typed so far, verbatim.
func (m Model) Value() string {
	return m.Inner.Value()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			m.Submitted = true
			m.Inner.Blur()
			return m, tea.Quit
		}

	case ctrlcwrapper.AboutToExitMsg:
		m.aboutToExit = true
		return m, ctrlcwrapper.InnerIsReady
	}

	var cmd tea.Cmd
	m.Inner, cmd = m.Inner.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	prompt := styles.Bold().Render(m.Prompt)

	if m.Submitted {
		// Leave the question and answer behind in the scrollback.
		return prompt + "\n" + styles.Secondary().Render(m.Value()) + "\n"
	}
	if m.aboutToExit {
		return prompt + "\n"
	}

	return prompt + "\n" + m.Inner.View() + "\n"
}
