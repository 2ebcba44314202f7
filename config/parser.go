package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/ardnew/typecfg/log"
)

// Parser holds the variables declared by one configuration source and every
// error recorded while parsing it or looking variables up.
//
// The variable table is fixed once construction returns. Accessors may
// append lookup errors, so the error list is guarded and a Parser is safe
// for concurrent use.
type Parser struct {
	name   string
	vars   map[string]Variable
	order  []string
	logger log.Logger

	mu   sync.Mutex
	errs []*Error
}

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the structured logger for parse tracing and error reports.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

func newParser(name string, opts ...Option) *Parser {
	p := &Parser{
		name: name,
		vars: make(map[string]Variable),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// New reads and parses the configuration file at path.
//
// A file that cannot be opened yields a Parser with an empty table and the
// single error "Error opening file: <path>".
func New(ctx context.Context, path string, opts ...Option) *Parser {
	f, err := os.Open(path)
	if err != nil {
		p := newParser(path, opts...)
		p.record(ctx, ErrOpenFile.
			Errorf("Error opening file: %s", path).
			With(slog.String("file", path), slog.String("cause", err.Error())))

		return p
	}
	defer f.Close()

	return NewFromReader(ctx, path, f, opts...)
}

// NewFromReader reads all of r and parses it. The name identifies the source
// in error messages.
func NewFromReader(
	ctx context.Context,
	name string,
	r io.Reader,
	opts ...Option,
) *Parser {
	data, err := io.ReadAll(r)
	if err != nil {
		p := newParser(name, opts...)
		p.record(ctx, ErrReadInput.
			Errorf("Error reading file: %s", name).
			With(slog.String("file", name), slog.String("cause", err.Error())))

		return p
	}

	return NewFromString(ctx, name, string(data), opts...)
}

// NewFromString parses src. The name identifies the source in error messages.
func NewFromString(
	ctx context.Context,
	name string,
	src string,
	opts ...Option,
) *Parser {
	p := newParser(name, opts...)
	p.parse(ctx, src)

	return p
}

// Name returns the name of the parsed source.
func (p *Parser) Name() string { return p.name }

// Len returns the number of variables in the table.
func (p *Parser) Len() int { return len(p.order) }

// Names returns the variable names in declaration order.
func (p *Parser) Names() []string { return slices.Clone(p.order) }

// Lookup returns the variable declared as name. It never records an error.
func (p *Parser) Lookup(name string) (Variable, bool) {
	v, ok := p.vars[name]

	return v, ok
}

// ErrorCount returns the number of errors recorded so far.
func (p *Parser) ErrorCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.errs)
}

// ErrorString returns every recorded error message, one per line.
func (p *Parser) ErrorString() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	msgs := make([]string, len(p.errs))
	for i, err := range p.errs {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "\n")
}

// Errors returns a snapshot of the recorded errors. Each is an [*Error].
func (p *Parser) Errors() []error {
	p.mu.Lock()
	defer p.mu.Unlock()

	errs := make([]error, len(p.errs))
	for i, err := range p.errs {
		errs[i] = err
	}

	return errs
}

// Err returns the recorded errors joined with [errors.Join], or nil.
func (p *Parser) Err() error {
	return errors.Join(p.Errors()...)
}

// PrintVariableMap writes every variable with its declared type and raw
// expression in declaration order.
func (p *Parser) PrintVariableMap(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Variable Map:"); err != nil {
		return err
	}

	for _, name := range p.order {
		v := p.vars[name]

		_, err := fmt.Fprintf(w, "\t%s --> <%s> : %s\n", name, v.TypeString(), v.Expr)
		if err != nil {
			return err
		}
	}

	return nil
}

// record appends err to the error list and reports it.
func (p *Parser) record(ctx context.Context, err *Error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()

	p.logger.WarnContext(ctx, "config error", slog.Any("error", err))
}

func (p *Parser) insert(name string, v Variable) {
	p.vars[name] = v
	p.order = append(p.order, name)
}
