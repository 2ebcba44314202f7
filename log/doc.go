// Package log provides leveled structured logging on top of [log/slog].
//
// A [Logger] is built from functional options and never changes after
// construction; [Logger.Wrap] and [Logger.With] return derived copies.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("kitchen"))
//	logger.Info("loaded", slog.String("file", path))
//
// # Levels
//
// In addition to the four [log/slog] levels the package defines
// [LevelTrace], which sits below [LevelDebug].
//
// # Formats
//
// [FormatText] writes key=value lines. With [WithPretty] enabled (the
// default) the line is colorized when the destination is a terminal.
// [FormatJSON] writes one JSON object per line.
//
// # Default logger
//
// The package-level functions ([Info], [Warn], ...) write through a default
// logger that targets [os.Stderr]. [Config] adjusts it in place.
package log
