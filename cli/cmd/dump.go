package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/typecfg/config"
)

// Dump prints the variable map of a source, including whatever was declared
// before the first malformed declaration.
type Dump struct {
	Styled bool `help:"Render the variable map as a table." short:"S"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	p := load(ctx, d.Source)
	w := outputFrom(ctx)

	if d.Styled {
		err = renderTable(w, p)
	} else {
		err = p.PrintVariableMap(w)
	}

	if err != nil {
		return ErrWrite.Wrap(err)
	}

	return nil
}

// renderTable writes the variables of p as a bordered table. Colors are
// applied only when w is a terminal.
func renderTable(w io.Writer, p *config.Parser) error {
	r := lipgloss.NewRenderer(w)

	var (
		header = r.NewStyle().Bold(true).Padding(0, 1)
		name   = r.NewStyle().Foreground(lipgloss.Color("6")).Padding(0, 1)
		typ    = r.NewStyle().Foreground(lipgloss.Color("5")).Padding(0, 1)
		value  = r.NewStyle().Padding(0, 1)
		border = r.NewStyle().Foreground(lipgloss.Color("8"))
	)

	rows := make([][]string, 0, p.Len())

	for _, n := range p.Names() {
		v, _ := p.Lookup(n)
		rows = append(rows, []string{n, v.TypeString(), v.Expr})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("NAME", "TYPE", "EXPRESSION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return name
			case col == 1:
				return typ
			default:
				return value
			}
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
