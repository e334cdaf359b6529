// Package cli translates command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tfgraph/internal/app"
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
	flagSet := flag.NewFlagSet("tfgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
tfgraph - Terraform configuration entity and dependency-graph extractor.

Usage:
  tfgraph [options] [DIR]

Arguments:
  DIR
    Directory containing .tf files, scanned recursively.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := app.DefaultsFromEnv()

	dirFlag := flagSet.String("dir", "", "Directory containing .tf files.")
	dFlag := flagSet.String("d", "", "Directory containing .tf files (shorthand).")
	outFlag := flagSet.String("out", defaults.OutPath, "Path for the JSON graph document. Empty prints to stdout.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 8, "Number of parallel file loads.")
	prefixesFlag := flagSet.String("cloud-prefixes", strings.Join(defaults.CloudPrefixes, ","),
		"Comma-separated resource-type prefixes treated as shorthand references. Empty uses the built-in set.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	dir := ""
	if *dirFlag != "" {
		dir = *dirFlag
	} else if *dFlag != "" {
		dir = *dFlag
	} else if flagSet.NArg() > 0 {
		dir = flagSet.Arg(0)
	}

	if dir == "" {
		flagSet.Usage()
		return nil, true, nil
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

	var prefixes []string
	for _, prefix := range strings.Split(*prefixesFlag, ",") {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			prefixes = append(prefixes, prefix)
		}
	}

	config, err := app.NewConfig(app.Config{
		Dir:           dir,
		OutPath:       *outFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
		CloudPrefixes: prefixes,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
