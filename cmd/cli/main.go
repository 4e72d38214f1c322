package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/avrkit/partscope/internal/app"
	"github.com/avrkit/partscope/internal/cli"
	"github.com/avrkit/partscope/internal/hcl"
)

// main is the entrypoint for the partscope application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(inR io.Reader, outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	partscopeApp, err := app.NewApp(outW, appConfig, loader)
	if err != nil {
		return err
	}

	return partscopeApp.Run(context.Background(), inR)
}
