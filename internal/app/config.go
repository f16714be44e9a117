package app

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultPort is the port advertised when neither a manifest nor the --port
// flag overrides it.
const DefaultPort = 23232

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Dir          string // application directory to describe
	ManifestPath string // manifest file or directory; empty means auto-detect
	AppName      string // selects an app block when the manifest has several
	Port         int    // advertised port; 0 probes a free one
	RawPath      bool   // emit working_directory exactly as given

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Dir == "" {
		return nil, errors.New("Dir is a required configuration field and cannot be empty")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d is outside the valid range 0-65535", cfg.Port)
	}

	return &cfg, nil
}

// defaultExecutable is the launch command advertised for a directory whose
// manifest does not override it: the stock python file server.
func defaultExecutable(port int) []string {
	return []string{"python3", "-m", "http.server", strconv.Itoa(port)}
}
