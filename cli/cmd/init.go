package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/typecfg/config"
	"github.com/ardnew/typecfg/log"
	"github.com/ardnew/typecfg/profile"
)

// Init generates a flag defaults file from the current flag values.
type Init struct {
	Force  bool   `help:"Overwrite existing configuration file" short:"f"`
	Output string `default:"${config}" help:"Configuration file to write." placeholder:"FILE" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrWriteConfig.With(slog.String("file", i.Output)).
			Wrap(errNoKongContext)
	}

	// Check if file exists and force not set
	_, err = os.Stat(i.Output)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", i.Output), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	src := declarations(ktx)

	// Everything written must read back through the flag resolver.
	if p := config.NewFromString(ctx, i.Output, src); p.ErrorCount() > 0 {
		return ErrWriteConfig.With(slog.String("file", i.Output)).Wrap(p.Err())
	}

	err = os.WriteFile(i.Output, []byte(src), 0o600)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", i.Output)).Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", i.Output),
	)

	return nil
}

// declarations renders every top-level flag with a representable value as
// a declaration. Hyphens in flag names become underscores.
func declarations(ktx *kong.Context) string {
	var b strings.Builder

	b.WriteString("# flag defaults; command-line flags take precedence\n")

	ignore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		typ, val, ok := flagDecl(reflect.ValueOf(ktx.FlagValue(flag)))
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "%s %s = %s;\n",
			typ, strings.ReplaceAll(flag.Name, "-", "_"), config.FormatValue(val))
	}

	return b.String()
}

// flagDecl returns the declaration type and native value of a flag value.
// Named types decode by their underlying kind. Values a declaration cannot
// hold report false.
func flagDecl(v reflect.Value) (typ string, val any, ok bool) {
	switch v.Kind() {
	case reflect.Bool:
		return "bool", v.Bool(), true

	case reflect.String:
		s := v.String()

		return "string", s, s != "" && !strings.ContainsRune(s, '"')

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int", int(v.Int()), true

	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "int", int(v.Uint()), true

	case reflect.Float32:
		return "float", float32(v.Float()), true

	case reflect.Float64:
		return "double", v.Float(), true

	case reflect.Slice:
		if v.Len() == 0 {
			return "", nil, false
		}

		elems := make([]any, v.Len())

		for i := range v.Len() {
			t, e, ok := flagDecl(v.Index(i))
			if !ok || (typ != "" && t != typ) {
				return "", nil, false
			}

			typ, elems[i] = t, e
		}

		return typ + "[]", elems, true

	default:
		return "", nil, false
	}
}
