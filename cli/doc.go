// Package cli contains the command line interface for typecfg.
//
// # Usage
//
//	typecfg check app.cfg
//	typecfg get app.cfg port
//	typecfg get --type string --vector app.cfg tags
//	typecfg fmt json --indent 4 app.cfg
//	typecfg eval app.cfg 'port + 1'
//	typecfg env --prepend app.cfg
//	typecfg repl app.cfg
//
// Commands taking an optional source read stdin when it is omitted or "-".
//
// # Flag Defaults
//
// Flag defaults are read from "config" and "config.json" in the per-user
// configuration directory (for example ~/.config/typecfg). The first is
// written in the typecfg format itself, with underscores in place of
// hyphens:
//
//	string log_level  = "debug";
//	bool   log_pretty = false;
//
// Command-line flags override configured defaults.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     subdirectory of the per-user cache directory)
package cli
