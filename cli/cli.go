package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/typecfg/cli/cmd"
	"github.com/ardnew/typecfg/pkg"
)

// CLI is the top-level command-line interface for typecfg.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Check cmd.Check `cmd:"" help:"Parse a configuration and report every error."`
	Dump  cmd.Dump  `cmd:"" help:"Print the variable map of a configuration."`
	Get   cmd.Get   `cmd:"" help:"Print the value of one variable."`
	Fmt   cmd.Fmt   `cmd:"" help:"Re-emit a configuration in another format."`
	Eval  cmd.Eval  `cmd:"" help:"Evaluate an expression over the declared variables."`
	Env   cmd.Env   `cmd:"" help:"Print shell export statements for every variable."`
	Repl  cmd.Repl  `cmd:"" help:"Browse a configuration interactively."`
	Init  cmd.Init  `cmd:"" help:"Write the current flag values to the flag defaults file."`
}

// Run executes the typecfg CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position, and before the configuration file is resolved.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The singleton provider above returns ctx when a command first asks for
	// it, so commands see the kong context stored here.
	ctx = cmd.WithContext(ctx, ktx)

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
