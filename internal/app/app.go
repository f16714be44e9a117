package app

import (
	"fmt"
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The descriptor is
// written to outW; all logging goes to errW so outW stays machine-readable.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}

// InvalidDirectoryError reports that the requested application directory
// does not exist. Its message is the exact line the CLI prints to stderr.
type InvalidDirectoryError struct {
	Path string
}

// Error implements the error interface for InvalidDirectoryError.
func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("Error: directory %s does not exist", e.Path)
}
