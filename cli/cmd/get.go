package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/typecfg/config"
)

// Get prints the value of one variable through the typed accessor.
type Get struct {
	Type   string `help:"Expected element type (default: declared type)." placeholder:"TYPE" short:"t"`
	Vector bool   `help:"Expect a vector."                                                 short:"v"`

	Source string `arg:"" help:"Source input file or '-' for stdin." name:"source"`
	Name   string `arg:"" help:"Variable name."                      name:"name"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	p, err := loadStrict(ctx, g.Source)
	if err != nil {
		return err
	}

	typ := g.typeToken(p)

	val, ok := p.Get(g.Name, typ)
	if !ok {
		return ErrLookup.Wrap(p.Err()).With(
			slog.String("name", g.Name),
			slog.String("type", typ),
		)
	}

	_, err = fmt.Fprintln(outputFrom(ctx), config.FormatValue(val))
	if err != nil {
		return ErrWrite.Wrap(err)
	}

	return nil
}

// typeToken returns the type token to look g.Name up with. An empty token
// accepts the declared type. --vector without --type requires the declared
// type to be a vector.
func (g *Get) typeToken(p *config.Parser) string {
	typ := g.Type

	if g.Vector && typ == "" {
		v, ok := p.Lookup(g.Name)
		if !ok {
			return ""
		}

		typ = v.Type.String()
	}

	if g.Vector {
		typ += "[]"
	}

	return typ
}
