package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/prog2math/internal/app"
	"github.com/vk/prog2math/internal/builder"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("prog2math", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
prog2math - compiles a program call graph into one closed-form LaTeX formula.

Usage:
  prog2math [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a .json call-graph file or a .hcl file with formula blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the input file.")
	iFlag := flagSet.String("i", "", "Path to the input file (shorthand).")
	outputFlag := flagSet.String("output", "", "Path to write the formula to. Empty writes to stdout.")
	oFlag := flagSet.String("o", "", "Path to write the formula to (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxDepthFlag := flagSet.Int("max-depth", builder.DefaultMaxDepth, "Maximum call-graph nesting depth.")
	quietFlag := flagSet.Bool("quiet", false, "Suppress the startup banner.")
	qFlag := flagSet.Bool("q", false, "Suppress the startup banner (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outPath := *outputFlag
	if outPath == "" {
		outPath = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxDepthFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-depth: must be at least 1"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:  path,
		OutputPath: outPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		MaxDepth:   *maxDepthFlag,
		Quiet:      *quietFlag || *qFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
