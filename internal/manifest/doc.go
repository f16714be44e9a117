// Package manifest loads the optional HCL app manifest that overrides the
// emitter's built-in defaults. It translates `app` blocks into plain Go
// structs, evaluating expressions against the configured port and the
// resolved application directory.
package manifest
