package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/campus/internal/app"
	"github.com/aussiebroadwan/campus/internal/cli"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return cli.ExitFailure
	}

	application, err := app.New(ctx, cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		return cli.ExitFailure
	}
	defer func() {
		if err := application.Close(); err != nil {
			application.Logger().Error("shutdown failed", "error", err)
		}
	}()

	ctx = slogx.WithContext(ctx, application.Logger())
	application.CheckBackend(ctx)

	return cli.New(application.Client(), os.Stdout, os.Stderr, application.Logger()).Run(ctx, os.Args[1:])
}
