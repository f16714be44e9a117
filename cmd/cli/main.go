package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/discoverapp/internal/app"
	"github.com/vk/discoverapp/internal/cli"
)

// main is the entrypoint for the discover-app binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error from run to the process exit status: 1 for a
// missing application directory, 2 for usage and configuration problems.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var dirErr *app.InvalidDirectoryError
	if errors.As(err, &dirErr) {
		return 1
	}
	return 2
}

// run encapsulates the main application logic for easier testing and error
// handling. The descriptor goes to outW; usage text and logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	discoverApp := app.NewApp(outW, errW, appConfig)

	return discoverApp.Run(context.Background())
}
