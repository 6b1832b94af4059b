package question

import (
	"errors"
	"fmt"
)

// Console is the I/O handle every Question talks through. Ask prints a prompt
// and returns the next answer. Pause prints a message and waits for the user
// to acknowledge it.
type Console interface {
	Ask(prompt string) (string, error)
	Pause(message string) error
}

// Question asks the user one thing and returns their answer verbatim.
type Question func(con Console) (string, error)

// Then returns a Question that asks q and then next, returning only the answer
// to next.
func (q Question) Then(next Question) Question {
	if q == nil {
		return next
	}
	if next == nil {
		return q
	}

	return func(con Console) (string, error) {
		if _, err := q(con); err != nil {
			return "", err
		}
		return next(con)
	}
}

// Chain composes the given questions into one. Asking the result asks every
// question in order and returns the last answer.
func Chain(qs ...Question) Question {
	var chained Question
	for _, q := range qs {
		chained = chained.Then(q)
	}
	if chained == nil {
		return func(Console) (string, error) { return "", nil }
	}
	return chained
}

// Run asks each question in seq in order and returns the answer to the last
// one. Earlier answers are discarded. The first error stops the run.
func Run(con Console, seq []Question) (string, error) {
	answer := ""
	for i, q := range seq {
		var err error
		answer, err = q(con)
		if err != nil {
			return "", fmt.Errorf("asking question %d of %d: %w", i+1, len(seq), err)
		}
	}

	return answer, nil
}

var (
	// ErrInputClosed is returned when the input ends before an answer could be
	// read.
	ErrInputClosed = errors.New("input closed")

	// ErrInterrupted is returned when the user cancels a prompt (e.g. ctrl+C).
	ErrInterrupted = errors.New("interrupted")

	// ErrUnknownQuestion is returned when asking for an ID outside the catalog.
	ErrUnknownQuestion = errors.New("unknown question")
)
