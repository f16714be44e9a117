// Package netutil provides small networking helpers.
package netutil

import (
	"fmt"
	"net"
)

// FreeTCPPort asks the kernel for an unused TCP port by binding to port 0
// and reading back the assigned address. The listener is closed before
// returning, so the port is only probably free by the time a child process
// binds it.
func FreeTCPPort() (int, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, fmt.Errorf("failed to probe for a free port: %w", err)
	}
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected listener address type %T", l.Addr())
	}
	return addr.Port, nil
}
