package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/clampsum/internal/app"
	"github.com/specialistvlad/clampsum/internal/cli"
	"github.com/specialistvlad/clampsum/internal/hcl"
)

// main is the entrypoint for the clampsum application.
func main() {
	// Use a minimal logger until the run's own logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	clampsum := app.NewApp(in, outW, errW, appConfig, hcl.NewLoader())
	return clampsum.Run(context.Background())
}

// report prints the diagnostic for err and returns the process exit code.
func report(errW io.Writer, err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return cli.ExitFailure
}
