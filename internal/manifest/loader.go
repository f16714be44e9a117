package manifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/discoverapp/internal/ctxlog"
	"github.com/vk/discoverapp/internal/fsutil"
)

// EvalVars are the values exposed to manifest expressions. A manifest can
// reference them by name, e.g. `executable = ["python3", "-m", "http.server", port]`.
type EvalVars struct {
	// Port is the configured port, as a string so it can be spliced
	// directly into command arguments.
	Port string
	// Dir is the absolute path of the application directory.
	Dir string
}

// evalContext builds the HCL evaluation context from the variables.
func evalContext(vars EvalVars) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"port": cty.StringVal(vars.Port),
			"dir":  cty.StringVal(vars.Dir),
		},
	}
}

// Load reads all `app` blocks from the manifest at path, which may be a
// single .hcl file or a directory searched recursively for .hcl files.
// Blocks are merged across files; duplicate labels are an error.
func Load(ctx context.Context, path string, vars EvalVars) ([]*App, error) {
	logger := ctxlog.FromContext(ctx)

	files := []string{path}
	if fsutil.IsDir(path) {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to search %s for manifest files: %w", path, err)
		}
		// Walk order is already lexical, but sorting keeps the merge
		// deterministic if that ever changes.
		sort.Strings(found)
		files = found
	}
	logger.Debug("Loading manifest files.", "path", path, "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := evalContext(vars)

	var apps []*App
	seen := map[string]string{}
	for _, f := range files {
		parsed, err := loadFile(f, parser, evalCtx)
		if err != nil {
			return nil, err
		}
		for _, app := range parsed {
			if prev, ok := seen[app.Name]; ok {
				return nil, fmt.Errorf("duplicate app block %q in %s (first defined in %s)", app.Name, f, prev)
			}
			seen[app.Name] = f
			apps = append(apps, app)
		}
		logger.Debug("Manifest file loaded.", "file", f, "apps", len(parsed))
	}

	return apps, nil
}

// loadFile parses a single HCL file and returns the app blocks found within it.
func loadFile(filePath string, parser *hclparse.Parser, evalCtx *hcl.EvalContext) ([]*App, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
	}

	var parsed file
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
	}

	return parsed.Apps, nil
}

// Select picks the app block to use. With an empty name a sole block is
// selected implicitly; any other case must be disambiguated by the caller.
func Select(apps []*App, name string) (*App, error) {
	if name == "" {
		switch len(apps) {
		case 0:
			return nil, fmt.Errorf("manifest defines no app blocks")
		case 1:
			return apps[0], nil
		default:
			return nil, fmt.Errorf("manifest defines %d app blocks; select one with --app", len(apps))
		}
	}

	for _, app := range apps {
		if app.Name == name {
			return app, nil
		}
	}
	return nil, fmt.Errorf("manifest defines no app block named %q", name)
}
