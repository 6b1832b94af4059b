// Package console implements a line-oriented question.Console on top of plain
// readers and writers, typically os.Stdin and os.Stdout.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/funcdemo/intake/pkg/question"
)

var _ question.Console = (*Line)(nil)

// Line prints one line per prompt and reads one line per answer. All reads go
// through a single buffered reader, so answers are consumed in lockstep with
// prompts and no line is skipped.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Line console reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Line {
	return &Line{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// Ask prints the prompt and returns the next line of input without its line
// terminator. A final line with no terminator is still an answer; if nothing
// at all is left to read, Ask returns question.ErrInputClosed.
func (l *Line) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprintln(l.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	return l.readLine()
}

// Pause prints the message and waits for a line of input. The end of input
// counts as acknowledgment.
func (l *Line) Pause(message string) error {
	if _, err := fmt.Fprintln(l.out, message); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}

	if _, err := l.readLine(); err != nil && !errors.Is(err, question.ErrInputClosed) {
		return err
	}
	return nil
}

func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", question.ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
