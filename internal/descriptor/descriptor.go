package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Descriptor describes how to launch an application and where to route
// traffic for it. It is the document consumed by the reverse proxy
// supervisor: `executable` is spawned with `working_directory` as its
// working directory, and requests are forwarded to `reverse_proxy_to`.
type Descriptor struct {
	Executable       []string `json:"executable"`
	ReverseProxyTo   string   `json:"reverse_proxy_to"`
	WorkingDirectory string   `json:"working_directory"`
}

// Validate checks that the descriptor is fully populated and internally
// consistent. A descriptor is always emitted whole; there are no optional
// fields.
func (d *Descriptor) Validate() error {
	if len(d.Executable) == 0 {
		return errors.New("descriptor has an empty executable command")
	}
	if d.Executable[0] == "" {
		return errors.New("descriptor executable has an empty command name")
	}
	if d.WorkingDirectory == "" {
		return errors.New("descriptor has an empty working_directory")
	}
	if _, err := ParseProxyTarget(d.ReverseProxyTo); err != nil {
		return fmt.Errorf("invalid reverse_proxy_to %q: %w", d.ReverseProxyTo, err)
	}
	return nil
}

// Encode writes the descriptor to w as a single line of JSON followed by a
// newline. Field order matches the struct declaration.
func (d *Descriptor) Encode(w io.Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}
	return nil
}
