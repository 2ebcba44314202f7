package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardnew/typecfg/cli"
	"github.com/ardnew/typecfg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		// slog renders err through its LogValue method
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
