package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/typecfg/config"
	"github.com/ardnew/typecfg/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from
// a file written in the typecfg format itself.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config")
//
// Every declaration becomes the default of the flag with the same name.
// Hyphens in flag names are written as underscores:
//
//	string log_level  = "debug";
//	string log_format = "json";
//	bool   log_pretty = false;
//
// is equivalent to
//
//	--log-level=debug --log-format=json --no-log-pretty
//
// Vectors supply comma-separated values for slice flags. A malformed file
// is reported through the logger; whatever was declared before the first
// error still applies. Command-line flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		name := "config"
		if f, ok := r.(interface{ Name() string }); ok {
			name = f.Name()
		}

		p := config.NewFromReader(ctx, name, r,
			config.WithLogger(log.Default()),
		)

		return flagValues(p), nil
	}
}

// resolver implements [kong.Resolver] over values converted for kong.
type resolver map[string]any

// flagValues converts every decodable variable of p to a value kong can
// assign to a flag.
func flagValues(p *config.Parser) resolver {
	m := p.ToMap()
	r := make(resolver, len(m))

	for name, v := range m {
		r[name] = flagValue(v)
	}

	return r
}

// flagValue renders v for kong. Kong parses numbers from strings, and slice
// flags from comma-separated strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case string, bool:
		return v
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ",")
	case []int, []float32, []float64, []bool:
		s := strings.Trim(config.FormatValue(v), "[]")

		return strings.ReplaceAll(s, ", ", ",")
	default:
		return config.FormatValue(v)
	}
}

// Validate implements [kong.Resolver].
func (resolver) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r resolver) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
