package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// ToMap decodes every variable into a map keyed by name. Values have the
// dynamic types documented on [ParseValue].
func (p *Parser) ToMap() map[string]any {
	m := make(map[string]any, len(p.order))

	for _, name := range p.order {
		if v, err := p.vars[name].Value(); err == nil {
			m[name] = v
		}
	}

	return m
}

// FormatValue renders a decoded value the way it is written in a
// declaration: strings are quoted and vectors are bracketed.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return string(quote) + v + string(quote)
	case int:
		return strconv.Itoa(v)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return formatVector(v)
	case []int:
		return formatVector(v)
	case []float32:
		return formatVector(v)
	case []float64:
		return formatVector(v)
	case []bool:
		return formatVector(v)
	case []any:
		return formatVector(v)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}

func formatVector[T any](vs []T) string {
	elems := make([]string, len(vs))
	for i, v := range vs {
		elems[i] = FormatValue(v)
	}

	return string(vectorOpen) + strings.Join(elems, ", ") + string(vectorClose)
}

// Format writes the table as declarations, one per line, in declaration
// order. The output parses back to an equal table.
func (p *Parser) Format(_ context.Context, w io.Writer) error {
	for _, name := range p.order {
		v := p.vars[name]

		expr := v.Expr
		if val, err := v.Value(); err == nil {
			expr = FormatValue(val)
		}

		canon := Variable{Type: v.Type, Vector: v.Vector, Expr: expr}

		if _, err := fmt.Fprintf(w, "%s%c\n", canon.declaration(name), terminator); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the table as a JSON object. Non-finite floating-point
// values are written as the strings "inf", "-inf" and "nan".
func (p *Parser) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	m := p.ToMap()
	for name, v := range m {
		m[name] = jsonSafe(v)
	}

	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// jsonSafe replaces non-finite floats, which JSON cannot represent.
func jsonSafe(v any) any {
	finite := func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

	switch v := v.(type) {
	case float32:
		if !finite(float64(v)) {
			return formatFloat(float64(v), 32)
		}
	case float64:
		if !finite(v) {
			return formatFloat(v, 64)
		}
	case []float32:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = jsonSafe(f)
		}

		return out
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = jsonSafe(f)
		}

		return out
	}

	return v
}

// FormatYAML writes the table as a YAML mapping in declaration order.
// A non-positive indent selects flow style.
func (p *Parser) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	m := p.ToMap()

	ordered := make(yaml.MapSlice, 0, len(m))
	for _, name := range p.order {
		if v, ok := m[name]; ok {
			ordered = append(ordered, yaml.MapItem{Key: name, Value: v})
		}
	}

	data, err := yaml.MarshalContext(ctx, ordered, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// FormatTOML writes the table as a TOML document.
func (p *Parser) FormatTOML(_ context.Context, w io.Writer) error {
	return toml.NewEncoder(w).Encode(p.ToMap())
}
