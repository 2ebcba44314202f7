// Package cmd implements the typecfg subcommands. Each command reads one
// configuration source, a file path or "-" for stdin, and writes to the
// output carried by its context.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file that supplies flag defaults.
	ConfigIdentifier = "config"
)
