package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/typecfg/config"
)

// Fmt parses a source and re-emits its variables in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as typecfg declarations (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	TOML   TOML   `cmd:""                    help:"Format as TOML."`
}

// formatter writes a parsed table in one output format.
type formatter func(ctx context.Context, w io.Writer, p *config.Parser) error

// format loads source strictly and writes it with f.
func format(ctx context.Context, source, name string, f formatter) error {
	p, err := loadStrict(ctx, source)
	if err != nil {
		return err
	}

	err = f(ctx, outputFrom(ctx), p)
	if err != nil {
		return ErrMarshal.Wrap(err).With(
			slog.String("format", name),
			slog.String("source", p.Name()),
		)
	}

	return nil
}

// Native formats input as typecfg declarations, one per line.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the native command.
func (n *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return format(ctx, n.Source, "native",
		func(ctx context.Context, w io.Writer, p *config.Parser) error {
			return p.Format(ctx, w)
		},
	)
}

// JSON reads input, parses it, and outputs as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return format(ctx, j.Source, "json",
		func(ctx context.Context, w io.Writer, p *config.Parser) error {
			return p.FormatJSON(ctx, w, j.Indent)
		},
	)
}

// YAML reads input, parses it, and outputs as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return format(ctx, y.Source, "yaml",
		func(ctx context.Context, w io.Writer, p *config.Parser) error {
			return p.FormatYAML(ctx, w, y.Indent)
		},
	)
}

// TOML reads input, parses it, and outputs as TOML.
type TOML struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the toml command.
func (t *TOML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return format(ctx, t.Source, "toml",
		func(ctx context.Context, w io.Writer, p *config.Parser) error {
			return p.FormatTOML(ctx, w)
		},
	)
}
