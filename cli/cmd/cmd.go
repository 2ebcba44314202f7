package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/typecfg/config"
	"github.com/ardnew/typecfg/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	inputKey  struct{}
	outputKey struct{}
)

// WithInput returns a new context.Context whose commands read the "-" source
// from r instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// outputFrom returns the writer set by [WithOutput], else the kong context's
// stdout, else os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

const (
	// stdinSource is the special source indicator for reading from stdin.
	stdinSource = "-"
	// stdinName names the stdin source in diagnostics.
	stdinName = "<stdin>"
)

// load parses the configuration named by source. Problems are recorded on
// the returned Parser, never returned.
func load(ctx context.Context, source string) *config.Parser {
	opt := config.WithLogger(log.Default())

	if source == "" || source == stdinSource {
		return config.NewFromReader(ctx, stdinName, inputFrom(ctx), opt)
	}

	return config.New(ctx, source, opt)
}

// loadStrict is like load but fails when anything was recorded.
func loadStrict(ctx context.Context, source string) (*config.Parser, error) {
	p := load(ctx, source)

	if err := p.Err(); err != nil {
		return p, ErrParse.Wrap(err).With(
			slog.String("source", p.Name()),
			slog.Int("errors", p.ErrorCount()),
		)
	}

	return p, nil
}
