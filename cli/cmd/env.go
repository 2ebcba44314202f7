package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/typecfg/config"
)

// Env prints a shell export statement for every variable of a source.
//
// Vector elements are joined into a path list. With --prepend the elements
// are prefixed onto the current value of the environment variable, and with
// --exists only elements naming existing files are kept.
type Env struct {
	Prefix  string `help:"Prefix prepended to every exported name."                 placeholder:"PREFIX"`
	Upper   bool   `help:"Upper-case exported names."                              default:"true" negatable:""`
	Delim   string `help:"Vector element delimiter (default: OS path list separator)." placeholder:"SEP" short:"d"`
	Prepend bool   `help:"Prefix vector elements onto the current environment value." short:"p"`
	Exists  bool   `help:"Keep only vector elements naming existing files."           short:"e"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the env command.
func (e *Env) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	p, err := loadStrict(ctx, e.Source)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)
	m := p.ToMap()

	for _, name := range p.Names() {
		v, ok := m[name]
		if !ok {
			continue
		}

		key := e.key(name)

		_, err = fmt.Fprintf(w, "export %s=%s\n", key, shellQuote(e.value(key, v)))
		if err != nil {
			return ErrWrite.Wrap(err).With(slog.String("name", name))
		}
	}

	return nil
}

func (e *Env) key(name string) string {
	key := e.Prefix + name
	if e.Upper {
		key = strings.ToUpper(key)
	}

	return key
}

func (e *Env) delim() string {
	if e.Delim == "" {
		return string(os.PathListSeparator)
	}

	return e.Delim
}

// value renders v as the unquoted text of an environment variable.
func (e *Env) value(key string, v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		return e.join(key, v)
	case []int, []float32, []float64, []bool:
		return e.join(key, elements(v))
	default:
		return config.FormatValue(v)
	}
}

// join joins items into a path list in declaration order. With --prepend or
// --exists the list is munged: items lead the current value of key, and
// duplicate or missing paths are dropped. Otherwise items are kept verbatim.
func (e *Env) join(key string, items []string) string {
	delim := e.delim()

	if !e.Prepend && !e.Exists {
		return strings.Join(items, delim)
	}

	// One pre-delimited prefix item keeps its inner order.
	opts := []mung.Option[mung.Config]{
		mung.WithDelim(delim),
		mung.WithPrefixItems(strings.Join(items, delim)),
	}

	if e.Prepend {
		opts = append(opts, mung.WithSubjectItems(os.Getenv(key)))
	}

	if e.Exists {
		opts = append(opts, mung.WithFilter(exists))
	}

	return mung.Make(opts...).String()
}

// elements renders each element of a non-string vector.
func elements(v any) []string {
	s := config.FormatValue(v)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	if s == "" {
		return nil
	}

	return strings.Split(s, ", ")
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// shellQuote quotes s for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
