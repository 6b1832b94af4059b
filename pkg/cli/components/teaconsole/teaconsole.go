// Package teaconsole implements question.Console with a short-lived bubbletea
// program per prompt: a text input for questions and a "press any key" prompt
// for pauses.
package teaconsole

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/funcdemo/intake/pkg/cli/components/ctrlcwrapper"
	"github.com/funcdemo/intake/pkg/cli/components/keytocontinue"
	"github.com/funcdemo/intake/pkg/cli/components/textinput"
	"github.com/funcdemo/intake/pkg/question"
)

var _ question.Console = (*Console)(nil)

// Console runs its programs one after another on the same input and output.
type Console struct {
	in  io.Reader
	out io.Writer

	// ends watches for the end of input. It is nil for files, which bubbletea
	// must see unwrapped to put a terminal into raw mode.
	ends *endReader
}

// New returns a Console reading from in and drawing to out.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{in: in, out: out}
	if _, ok := in.(*os.File); !ok {
		c.ends = &endReader{r: in}
		c.in = c.ends
	}
	return c
}

// Ask shows the prompt with a text input and returns what the user typed.
// Pressing ctrl+C returns question.ErrInterrupted. If the input ends before
// the answer is submitted, Ask returns question.ErrInputClosed.
func (c *Console) Ask(prompt string) (string, error) {
	final, err := c.run(textinput.New(prompt))
	if err != nil {
		return "", fmt.Errorf("asking %q: %w", prompt, err)
	}

	m, ok := final.(textinput.Model)
	if !ok {
		return "", question.ErrInterrupted
	}
	if !m.Submitted {
		return "", question.ErrInputClosed
	}
	return m.Value(), nil
}

// Pause shows the message and waits for any key. The end of input counts as
// acknowledgment.
func (c *Console) Pause(message string) error {
	_, err := c.run(keytocontinue.New(message))
	if err != nil && !errors.Is(err, question.ErrInputClosed) {
		return fmt.Errorf("waiting for key press: %w", err)
	}
	return nil
}

// run runs the model wrapped for ctrl+C handling and returns the inner model
// as it was when the program ended. When the input runs out first, the inner
// model is returned together with question.ErrInputClosed.
func (c *Console) run(inner tea.Model) (tea.Model, error) {
	p := tea.NewProgram(
		endOfInput{inner: ctrlcwrapper.New(inner)},
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	if c.ends != nil {
		c.ends.setOnEnd(func() { p.Send(inputClosedMsg{}) })
		defer c.ends.setOnEnd(nil)
	}

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(endOfInput)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.inner.UserWantsToExit() {
		return nil, question.ErrInterrupted
	}

	unwrapped := m.inner.Unwrap()
	if m.closed && !finished(unwrapped) {
		return unwrapped, question.ErrInputClosed
	}
	return unwrapped, nil
}

// finished reports whether the inner model got what it was waiting for.
func finished(m tea.Model) bool {
	switch m := m.(type) {
	case textinput.Model:
		return m.Submitted
	case keytocontinue.Model:
		return m.Pressed
	}
	return false
}

// inputClosedMsg is sent once the input has nothing left to read.
type inputClosedMsg struct{}

// endOfInput ends the program when the input runs out, since nothing more
// can be typed.
type endOfInput struct {
	inner  ctrlcwrapper.Model[tea.Model]
	closed bool
}

func (m endOfInput) Init() tea.Cmd {
	return m.inner.Init()
}

func (m endOfInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(inputClosedMsg); ok {
		m.closed = true
		return m, tea.Quit
	}

	updated, cmd := m.inner.Update(msg)
	if inner, ok := updated.(ctrlcwrapper.Model[tea.Model]); ok {
		m.inner = inner
	}
	return m, cmd
}

func (m endOfInput) View() string {
	return m.inner.View()
}

// endReader calls a hook when the underlying reader reports io.EOF. Every key
// read before that has already been delivered to the running program, so the
// hook's message is handled after them.
type endReader struct {
	r io.Reader

	mu    sync.Mutex
	onEnd func()
}

func (e *endReader) setOnEnd(f func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onEnd = f
}

func (e *endReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) {
		e.mu.Lock()
		onEnd := e.onEnd
		e.mu.Unlock()

		if onEnd != nil {
			onEnd()
		}
	}
	return n, err
}
