package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/typecfg/config"
)

// Eval evaluates an expr-lang expression with every variable of a source in
// scope.
type Eval struct {
	Source string `arg:"" help:"Source input file or '-' for stdin."         name:"source"`
	Expr   string `arg:"" help:"Expression over the declared variable names." name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	p, err := loadStrict(ctx, e.Source)
	if err != nil {
		return err
	}

	result, err := p.Eval(e.Expr)
	if err != nil {
		return ErrEval.Wrap(err).
			With(
				slog.String("command", "eval"),
				slog.String("source", p.Name()),
			)
	}

	_, err = fmt.Fprintln(outputFrom(ctx), config.FormatValue(result))
	if err != nil {
		return ErrWrite.Wrap(err)
	}

	return nil
}
