// Package demo runs the intake questions once per composition style, showing
// that every style asks the same questions in the same order.
package demo

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/dustin/go-humanize"
	"github.com/funcdemo/intake/pkg/internal/errorhelpers"
	"github.com/funcdemo/intake/pkg/question"
	"github.com/funcdemo/intake/pkg/role"
)

const (
	transitionFormat = "Press any key to do the same thing with %s."
	endMessage       = "Press any key to end."
)

// Driver runs one round per style against a single console.
type Driver struct {
	con    question.Console
	styles []Style
}

// Option customizes a Driver.
type Option func(*Driver)

// WithStyles sets the styles to run, in order. An empty list keeps the
// defaults.
func WithStyles(styles ...Style) Option {
	return func(d *Driver) {
		if len(styles) > 0 {
			d.styles = styles
		}
	}
}

// New returns a Driver that talks to the user through con.
func New(con question.Console, opts ...Option) *Driver {
	d := &Driver{
		con:    con,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RoundResult is the outcome of one round.
type RoundResult struct {
	Style string

	// Answer is the answer to the last question of the round. Earlier answers
	// are not kept.
	Answer string
}

// Result is the outcome of a whole run.
type Result struct {
	Role   role.Role
	Rounds []RoundResult
}

// Run asks for the user's role once, then runs a round for each style,
// pausing between rounds and once more at the end.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	log := clog.FromContext(ctx)

	r, err := role.Ask(d.con)
	if err != nil {
		return Result{}, err
	}
	log.Info("resolved role", "role", r)

	result := Result{Role: r}

	for i, style := range d.styles {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if i > 0 {
			if err := d.con.Pause(Transition(style)); err != nil {
				return result, errorhelpers.LabelError(style.Name, err)
			}
		}

		log.Debugf("starting %s round (%s)", humanize.Ordinal(i+1), style.Name)

		answer, err := style.Build(r)(d.con)
		if err != nil {
			return result, errorhelpers.LabelError(style.Name, err)
		}

		log.Debug("finished round", "style", style.Name, "answer", answer)
		result.Rounds = append(result.Rounds, RoundResult{Style: style.Name, Answer: answer})
	}

	if err := d.con.Pause(endMessage); err != nil {
		return result, fmt.Errorf("waiting to end: %w", err)
	}

	log.Info("finished", "rounds", len(result.Rounds))
	return result, nil
}

// Transition returns the message shown before a round in the given style.
func Transition(s Style) string {
	return fmt.Sprintf(transitionFormat, s.Label)
}
