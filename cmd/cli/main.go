package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/prog2math/internal/app"
	"github.com/vk/prog2math/internal/cli"
)

// main is the entrypoint for the prog2math application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Formulas go to outW; diagnostics and the banner go to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (a defective operation
	// catalog), so we recover here to provide a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logW, "A critical startup error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	if !appConfig.Quiet {
		app.Banner(logW)
	}

	prog2mathApp := app.NewApp(outW, logW, appConfig)
	return prog2mathApp.Run(context.Background(), appConfig)
}
