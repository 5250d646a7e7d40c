package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/clampsum/internal/app"
	"github.com/specialistvlad/clampsum/internal/validation"
)

// ProgramName is the name used in usage and help text.
const ProgramName = "clampsum"

// Exit codes. Flag errors keep the conventional 2; everything a run can
// reject, including a wrong argument count, exits 1.
const (
	ExitFailure   = 1
	ExitFlagError = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageLine is the one-line usage reported on a wrong argument count.
func UsageLine() string {
	return fmt.Sprintf("Usage: %s <threshold> <limit>", ProgramName)
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%[1]s - clamp a list of decimals to a threshold and a running-total limit.

Usage:
  %[1]s [options] <threshold> <limit>
  %[1]s [options] -config <file.hcl>

Arguments:
  threshold   Amount subtracted from every input value (0 to 1,000,000,000).
  limit       Ceiling on the running total of the output (0 to 1,000,000,000).

Reads up to %[2]d decimal numbers from standard input, one per line, and
prints the transformed values followed by their total.

Options:
`, ProgramName, validation.MaxInputs)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL file that sets threshold and limit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	flagArgs, rest := splitArgs(args)
	if err := flagSet.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitFlagError, Message: err.Error()}
	}
	positional := make([]string, 0, flagSet.NArg()+len(rest))
	positional = append(positional, flagSet.Args()...)
	positional = append(positional, rest...)
	slog.Debug("Arguments parsed successfully.", "positional", len(positional))

	cfg := app.Config{
		ParamsPath: *configFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	}
	switch {
	case cfg.ParamsPath != "" && len(positional) == 0:
	case cfg.ParamsPath == "" && len(positional) == 2:
		cfg.Threshold, cfg.Limit = positional[0], positional[1]
	default:
		return nil, false, &ExitError{Code: ExitFailure, Message: UsageLine()}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitFlagError, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitArgs cuts args at the first one that reads as a number, so that
// negative values such as "-1" reach validation as positional arguments
// instead of failing as unknown flags.
func splitArgs(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i+1], args[i+1:]
		}
		if validation.IsNumber(arg) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}
