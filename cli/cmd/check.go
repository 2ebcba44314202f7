package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Check parses a source and reports every recorded error.
type Check struct {
	Quiet bool `help:"Report only through the exit status." short:"q"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	p := load(ctx, c.Source)
	w := outputFrom(ctx)

	if n := p.ErrorCount(); n > 0 {
		if !c.Quiet {
			if _, err := fmt.Fprintln(w, p.ErrorString()); err != nil {
				return ErrWrite.Wrap(err)
			}
		}

		return ErrParse.With(
			slog.String("source", p.Name()),
			slog.Int("errors", n),
		)
	}

	if c.Quiet {
		return nil
	}

	_, err = fmt.Fprintf(w, "%s: ok (%d variables)\n", p.Name(), p.Len())
	if err != nil {
		return ErrWrite.Wrap(err)
	}

	return nil
}
