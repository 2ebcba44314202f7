package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/typecfg/cli/cmd/repl"
	"github.com/ardnew/typecfg/log"
)

// Repl browses the variables of a source interactively.
type Repl struct {
	Cache string `default:"${cache}" help:"Directory holding the REPL history." placeholder:"DIR" type:"path"`

	Source string `arg:"" help:"Source input file." name:"source" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	// Errors are kept on the parser and listed by the errors command.
	p := load(ctx, r.Source)

	logger := log.Default().With(slog.String("command", "repl"))

	return repl.Run(ctx, p, r.Cache, logger)
}
