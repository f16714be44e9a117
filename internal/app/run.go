package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vk/discoverapp/internal/ctxlog"
	"github.com/vk/discoverapp/internal/descriptor"
	"github.com/vk/discoverapp/internal/fsutil"
	"github.com/vk/discoverapp/internal/manifest"
	"github.com/vk/discoverapp/internal/netutil"
)

// autoManifestName is the file looked up inside the application directory
// when no --manifest flag is given.
const autoManifestName = "app.hcl"

// Run executes the main application logic based on the provided configuration:
// validate the directory, apply any manifest overrides, and emit the descriptor.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cfg := a.config
	if !fsutil.IsDir(cfg.Dir) {
		return &InvalidDirectoryError{Path: cfg.Dir}
	}

	resolvedDir, err := fsutil.ResolveDir(cfg.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", cfg.Dir, err)
	}
	a.logger.Debug("Application directory resolved.", "dir", resolvedDir)

	port := cfg.Port
	if port == 0 {
		port, err = netutil.FreeTCPPort()
		if err != nil {
			return err
		}
		a.logger.Debug("Probed a free TCP port.", "port", port)
	}

	workingDir := resolvedDir
	if cfg.RawPath {
		workingDir = cfg.Dir
	}

	desc, err := a.buildDescriptor(ctx, resolvedDir, workingDir, port)
	if err != nil {
		return err
	}

	if err := desc.Encode(a.outW); err != nil {
		return err
	}
	a.logger.Info("Descriptor emitted.",
		"working_directory", desc.WorkingDirectory,
		"reverse_proxy_to", desc.ReverseProxyTo)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildDescriptor assembles the descriptor from built-in defaults and, when a
// manifest is present, the selected app block. Precedence is per field: a set
// manifest attribute wins, everything else falls back to the defaults.
func (a *App) buildDescriptor(ctx context.Context, resolvedDir, workingDir string, port int) (*descriptor.Descriptor, error) {
	desc := &descriptor.Descriptor{
		Executable:       defaultExecutable(port),
		ReverseProxyTo:   descriptor.TCPTarget(port),
		WorkingDirectory: workingDir,
	}

	manifestPath, err := a.findManifest(resolvedDir)
	if err != nil {
		return nil, err
	}
	if manifestPath == "" {
		a.logger.Debug("No manifest found, using built-in defaults.")
		return desc, nil
	}

	vars := manifest.EvalVars{Port: strconv.Itoa(port), Dir: resolvedDir}
	apps, err := manifest.Load(ctx, manifestPath, vars)
	if err != nil {
		return nil, err
	}
	selected, err := manifest.Select(apps, a.config.AppName)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("App block selected.", "name", selected.Name)

	if len(selected.Executable) > 0 {
		desc.Executable = selected.Executable
	}
	if selected.ReverseProxyTo != "" {
		desc.ReverseProxyTo = selected.ReverseProxyTo
	}
	if selected.WorkingDirectory != "" {
		wd, err := a.resolveManifestDir(resolvedDir, selected.WorkingDirectory)
		if err != nil {
			return nil, err
		}
		desc.WorkingDirectory = wd
	}

	return desc, nil
}

// findManifest returns the manifest path to load, or "" when there is none.
// An explicit --manifest path must exist; the auto-detected app.hcl is
// optional.
func (a *App) findManifest(resolvedDir string) (string, error) {
	if a.config.ManifestPath != "" {
		if _, err := os.Stat(a.config.ManifestPath); err != nil {
			return "", fmt.Errorf("manifest %s is not readable: %w", a.config.ManifestPath, err)
		}
		return a.config.ManifestPath, nil
	}

	auto := filepath.Join(resolvedDir, autoManifestName)
	if info, err := os.Stat(auto); err == nil && !info.IsDir() {
		return auto, nil
	}
	return "", nil
}

// resolveManifestDir validates a working_directory override from a manifest.
// Relative paths are anchored at the application directory.
func (a *App) resolveManifestDir(resolvedDir, wd string) (string, error) {
	joined := wd
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(resolvedDir, joined)
	}
	if !fsutil.IsDir(joined) {
		return "", &InvalidDirectoryError{Path: wd}
	}
	if a.config.RawPath {
		return joined, nil
	}
	return fsutil.ResolveDir(joined)
}
