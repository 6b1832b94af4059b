package wrapped

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// MaxLineLength caps LineLength for readability on wide terminals.
const MaxLineLength = 100

// fallbackLineLength is used when the terminal width can't be detected.
const fallbackLineLength = 80

// LineLength is the width printed text is wrapped to: the terminal width at
// startup, capped at MaxLineLength.
var LineLength = min(terminalWidth(), MaxLineLength)

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackLineLength
	}
	return w
}

// Fprintln wraps msg to LineLength and writes it to w with a trailing newline.
func Fprintln(w io.Writer, msg string) {
	fmt.Fprintln(w, Sprint(msg))
}

// Sprint wraps msg to LineLength.
func Sprint(msg string) string {
	return wordwrap.String(msg, LineLength)
}

// Repeat repeats s until the result is LineLength cells wide, e.g. to draw a
// divider. Rendered width is measured with lipgloss so styled or wide
// characters are counted correctly.
func Repeat(s string) string {
	if lipgloss.Width(s) == 0 {
		return ""
	}

	sb := new(strings.Builder)
	for lipgloss.Width(sb.String())+lipgloss.Width(s) <= LineLength {
		sb.WriteString(s)
	}
	return sb.String()
}
