package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/funcdemo/intake/pkg/question"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAsk(t *testing.T) {
	out := new(bytes.Buffer)
	con := New(strings.NewReader("Alice\n  2000-01-01 \r\ncheckup"), out)

	var answers []string
	for _, prompt := range []string{"first?", "second?", "third?"} {
		a, err := con.Ask(prompt)
		require.NoError(t, err)
		answers = append(answers, a)
	}

	if diff := cmp.Diff([]string{"Alice", "  2000-01-01 ", "checkup"}, answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "first?\nsecond?\nthird?\n", out.String())

	_, err := con.Ask("fourth?")
	require.ErrorIs(t, err, question.ErrInputClosed)
}

func TestLineAskEmptyLine(t *testing.T) {
	con := New(strings.NewReader("\n\n"), new(bytes.Buffer))

	for i := 0; i < 2; i++ {
		a, err := con.Ask("?")
		require.NoError(t, err)
		assert.Empty(t, a)
	}

	_, err := con.Ask("?")
	assert.ErrorIs(t, err, question.ErrInputClosed)
}

func TestLinePause(t *testing.T) {
	out := new(bytes.Buffer)
	con := New(strings.NewReader("whatever\nBob\n"), out)

	require.NoError(t, con.Pause("Press any key to continue."))

	// The pause consumed exactly one line.
	a, err := con.Ask("What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "Bob", a)

	// End of input acknowledges a pause.
	require.NoError(t, con.Pause("Press any key to end."))

	assert.Equal(t, "Press any key to continue.\nWhat is your name?\nPress any key to end.\n", out.String())
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLineReadError(t *testing.T) {
	sentinel := errors.New("disk on fire")
	con := New(failingReader{err: sentinel}, new(bytes.Buffer))

	_, err := con.Ask("?")
	require.ErrorIs(t, err, sentinel)

	err = con.Pause("...")
	require.ErrorIs(t, err, sentinel)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestLineWriteError(t *testing.T) {
	con := New(strings.NewReader("x\n"), failingWriter{})

	_, err := con.Ask("?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing prompt")
}
