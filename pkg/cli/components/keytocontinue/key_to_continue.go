package keytocontinue

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/funcdemo/intake/pkg/cli/components/breather"
	"github.com/funcdemo/intake/pkg/cli/components/ctrlcwrapper"
	"github.com/funcdemo/intake/pkg/cli/styles"
)

var _ tea.Model = (*Model)(nil)

// Model shows a message and ends the program when the user presses any key.
type Model struct {
	// message is shown next to the breathing marker, e.g. "Press any key to
	// end.".
	message string

	// Pressed is true once the user has pressed a key.
	Pressed bool

	aboutToExit bool
	breather    breather.Model
}

// New returns a model that continues on any key press.
func New(message string) Model {
	return Model{
		message:  message,
		breather: breather.New(">"),
	}
}

func (m Model) Init() tea.Cmd {
	return m.breather.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Pressed = true
		return m, tea.Quit

	case ctrlcwrapper.AboutToExitMsg:
		m.aboutToExit = true
		return m, ctrlcwrapper.InnerIsReady

	case breather.TickMsg:
		var cmd tea.Cmd
		m.breather, cmd = m.breather.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.aboutToExit {
		return ""
	}
	if m.Pressed {
		return m.breather.ViewStatic() + " " + styles.Faint().Render(m.message) + "\n"
	}

	return m.breather.View() + " " + styles.Bold().Render(m.message) + "\n"
}
