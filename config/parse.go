package config

import (
	"context"
	"log/slog"
	"strings"
)

// declaration carries the position of one declaration for error reporting.
type declaration struct {
	file  string
	index int // 1-based
	text  string
}

// fail derives a located error of the given kind.
func (d declaration) fail(kind *Error, format string, args ...any) *Error {
	return kind.
		Errorf("Parsing error in file %s, declaration %d: "+format,
			append([]any{d.file, d.index}, args...)...).
		With(slog.String("file", d.file), slog.Int("declaration", d.index))
}

// parse fills the table from src. Parsing stops at the first structural
// error; declarations before it remain in the table.
func (p *Parser) parse(ctx context.Context, src string) {
	decls := SplitDeclarations(Normalize(src))

	for i, text := range decls {
		d := declaration{file: p.name, index: i + 1, text: text}

		p.logger.TraceContext(ctx, "declaration",
			slog.Int("index", d.index),
			slog.String("text", text))

		name, v, err := p.parseDeclaration(d)
		if err != nil {
			p.record(ctx, err)

			break
		}

		p.insert(name, v)
	}

	p.logger.DebugContext(ctx, "parse complete",
		slog.String("file", p.name),
		slog.Int("declarations", len(decls)),
		slog.Int("variables", p.Len()),
		slog.Int("errors", p.ErrorCount()))
}

// parseDeclaration reads "type name = expr" from d.
func (p *Parser) parseDeclaration(d declaration) (string, Variable, *Error) {
	s := newScanner(d.text)

	tok := s.next(nil)

	t, vector, ok := ParseTypeToken(tok)
	if !ok {
		base := strings.TrimSuffix(tok, vectorSuffix)

		return "", Variable{}, d.fail(ErrInvalidType, "invalid type: %s", base).
			With(slog.String("type", base))
	}

	s.skipSpace()

	name := s.next(nil)
	if name == "" {
		return "", Variable{}, d.fail(ErrSyntax, "expected variable name")
	}

	if _, dup := p.vars[name]; dup {
		return "", Variable{}, d.fail(ErrRedefinition, "redefinition of entity: %s", name).
			With(slog.String("name", name))
	}

	s.skipSpace()

	if eq := s.next(nil); eq != "=" {
		return "", Variable{}, d.fail(ErrSyntax, "expected \"=\", encountered \"%s\"", eq).
			With(slog.String("name", name))
	}

	s.skipSpace()

	var expr string

	switch {
	case vector:
		if s.peek() != vectorOpen || s.last() != vectorClose {
			return "", Variable{}, d.fail(ErrSyntax, "vector must be enclosed in []").
				With(slog.String("name", name))
		}

		expr = s.rest()

	case t == TypeString:
		if s.peek() != quote || s.last() != quote {
			return "", Variable{}, d.fail(ErrSyntax, "string value must be enclosed in \"\"").
				With(slog.String("name", name))
		}

		expr = s.rest()

	default:
		expr = s.next(nil)
	}

	if _, err := ParseValue(t, vector, expr); err != nil {
		return "", Variable{}, d.fail(ErrLiteral, "could not parse `%s` as type %s",
			expr, typeString(t, vector)).
			With(
				slog.String("name", name),
				slog.String("type", typeString(t, vector)),
				slog.String("expr", expr),
				slog.String("cause", err.Error()))
	}

	if !s.done() {
		s.skipSpace()

		return "", Variable{}, d.fail(ErrSyntax, "expected %c at \"%s\"", terminator, s.rest()).
			With(slog.String("name", name))
	}

	return name, Variable{Type: t, Vector: vector, Expr: expr}, nil
}
