package manifest

// file represents the top-level structure of a manifest file for decoding.
type file struct {
	Apps []*App `hcl:"app,block"`
}

// App represents an `app` block from a manifest file. Every attribute is
// optional; unset attributes fall back to the emitter's built-in defaults.
type App struct {
	Name             string   `hcl:"name,label"`
	Executable       []string `hcl:"executable,optional"`
	ReverseProxyTo   string   `hcl:"reverse_proxy_to,optional"`
	WorkingDirectory string   `hcl:"working_directory,optional"`
}
