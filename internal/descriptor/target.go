package descriptor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// unixPrefix marks a proxy target as a unix socket. The path that follows
// is stored without its leading slash, matching the consumer's convention.
const unixPrefix = "unix/"

// ProxyTarget is a parsed reverse_proxy_to value. Exactly one of Port and
// SocketPath is set.
type ProxyTarget struct {
	// Port is the local TCP port for `:<port>` targets, 0 for unix targets.
	Port int
	// SocketPath is the absolute unix socket path for `unix/...` targets.
	SocketPath string
}

// String renders the target back into its wire form.
func (t ProxyTarget) String() string {
	if t.SocketPath != "" {
		return unixPrefix + strings.TrimPrefix(t.SocketPath, "/")
	}
	return TCPTarget(t.Port)
}

// TCPTarget formats a host-omitted TCP proxy target for the given port.
func TCPTarget(port int) string {
	return fmt.Sprintf(":%d", port)
}

// ParseProxyTarget parses a reverse_proxy_to string. Accepted forms are
// `:<port>` with port in 1..65535, and `unix/<path>`.
func ParseProxyTarget(s string) (ProxyTarget, error) {
	if rest, ok := strings.CutPrefix(s, unixPrefix); ok {
		if rest == "" {
			return ProxyTarget{}, errors.New("unix target has an empty socket path")
		}
		return ProxyTarget{SocketPath: "/" + strings.TrimPrefix(rest, "/")}, nil
	}

	rest, ok := strings.CutPrefix(s, ":")
	if !ok {
		return ProxyTarget{}, fmt.Errorf("target must start with %q or %q", ":", unixPrefix)
	}
	port, err := strconv.Atoi(rest)
	if err != nil {
		return ProxyTarget{}, fmt.Errorf("invalid port %q: %w", rest, err)
	}
	if port < 1 || port > 65535 {
		return ProxyTarget{}, fmt.Errorf("port %d is outside the valid range 1-65535", port)
	}
	return ProxyTarget{Port: port}, nil
}
