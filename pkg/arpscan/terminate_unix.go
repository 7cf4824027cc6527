//go:build !windows
// +build !windows

package arpscan

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminateProcess asks the process to exit gracefully.
func terminateProcess(p *os.Process) error {
	return p.Signal(unix.SIGTERM)
}
