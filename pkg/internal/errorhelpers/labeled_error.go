package errorhelpers

import (
	"errors"
	"fmt"
)

// LabeledError attaches a short label, such as the name of the step that
// failed, to an error.
type LabeledError struct {
	label string
	err   error
}

func (l LabeledError) Error() string {
	return fmt.Sprintf("%s: %s", l.label, l.err.Error())
}

// Label returns the label for the error.
func (l LabeledError) Label() string {
	return l.label
}

// Unwrap returns the underlying error.
func (l LabeledError) Unwrap() error {
	return l.err
}

// LabelError labels err. It returns nil if err is nil.
func LabelError(label string, err error) error {
	if err == nil {
		return nil
	}

	return &LabeledError{label, err}
}

// LabelOf returns the label of the outermost LabeledError in err's chain.
func LabelOf(err error) (string, bool) {
	var labeled *LabeledError
	if !errors.As(err, &labeled) {
		return "", false
	}
	return labeled.Label(), true
}
