package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/discoverapp/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("discover-app", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
discover-app - Emit an app descriptor for a directory of static files.

Usage:
  discover-app [options] [DIRECTORY]

Arguments:
  DIRECTORY
    Path to the application directory. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to a manifest .hcl file or a directory containing .hcl files.")
	appFlag := flagSet.String("app", "", "Name of the app block to select when the manifest defines several.")
	portFlag := flagSet.Int("port", app.DefaultPort, "Advertised port. 0 probes the kernel for a free one.")
	rawPathFlag := flagSet.Bool("raw-path", false, "Emit working_directory exactly as given instead of resolving it.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "error", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	dir := "."
	switch flagSet.NArg() {
	case 0:
		// current directory
	case 1:
		dir = flagSet.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one DIRECTORY"}
	}
	slog.Debug("Application directory determined.", "dir", dir)

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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Dir:          dir,
		ManifestPath: *manifestFlag,
		AppName:      *appFlag,
		Port:         *portFlag,
		RawPath:      *rawPathFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
