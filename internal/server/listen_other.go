//go:build !linux

package server

import (
	"fmt"
	"net"
)

// Listen listens on port on all IPv4 interfaces. The backlog is left to the
// operating system on this platform.
func Listen(port, backlog int) (net.Listener, error) {
	ln, err := net.Listen("tcp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	return ln, nil
}
