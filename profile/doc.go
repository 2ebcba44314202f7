// Package profile provides optional runtime profiling for typecfg.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// A profiler is configured with a mode and an output directory:
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode (cpu.pprof,
// mem.pprof, ...) and can be inspected with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling. It also names the
// default output subdirectory of the cache directory.
const Tag = `pprof`
